package store

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sakshisharma25/meetyfi-b/meeting"
)

const meetingsCollection = "meetings"

// MeetingsStore persists meetings; every creator-scoped query carries the
// creator_id so records never leak across accounts.
type MeetingsStore struct {
	col *mongo.Collection
}

var _ meeting.Store = (*MeetingsStore)(nil)

func NewMeetings(db *mongo.Database) *MeetingsStore {
	return &MeetingsStore{col: db.Collection(meetingsCollection)}
}

func (s *MeetingsStore) Insert(ctx context.Context, m *meeting.Meeting) (*meeting.Meeting, error) {
	if _, err := s.col.InsertOne(ctx, m); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert meeting")
	}
	return m, nil
}

func (s *MeetingsStore) FindByCreator(ctx context.Context, creatorID string, f meeting.Filter) ([]*meeting.Meeting, error) {
	return s.find(ctx, meetingFilterQuery(creatorID, f))
}

func (s *MeetingsStore) FindAll(ctx context.Context, f meeting.Filter) ([]*meeting.Meeting, error) {
	return s.find(ctx, meetingFilterQuery("", f))
}

func (s *MeetingsStore) find(ctx context.Context, query bson.M) ([]*meeting.Meeting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to query meetings")
	}
	defer cursor.Close(ctx)

	meetings := []*meeting.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to decode meetings")
	}
	return meetings, nil
}

func (s *MeetingsStore) FindByID(ctx context.Context, id, creatorID string) (*meeting.Meeting, error) {
	var m meeting.Meeting
	err := s.col.FindOne(ctx, bson.M{"_id": id, "creator_id": creatorID}).Decode(&m)
	if err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, newRecordNotFound("meeting", id)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to query meeting")
	}
	return &m, nil
}

func (s *MeetingsStore) Cancel(ctx context.Context, id, creatorID string, at time.Time) (*meeting.Meeting, error) {
	update := bson.M{"$set": bson.M{
		"status":       meeting.StatusCancelled,
		"cancelled_at": at,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m meeting.Meeting
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "creator_id": creatorID}, update, opts).Decode(&m)
	if err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, newRecordNotFound("meeting", id)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to cancel meeting")
	}
	return &m, nil
}

// meetingFilterQuery translates a listing filter into a Mongo query.
// Name and location match as case-insensitive substrings, date exactly,
// mirroring the original API.
func meetingFilterQuery(creatorID string, f meeting.Filter) bson.M {
	query := bson.M{}
	if creatorID != "" {
		query["creator_id"] = creatorID
	}
	if f.Date != "" {
		query["date"] = f.Date
	}
	if f.ClientName != "" {
		query["client_name"] = primitive.Regex{Pattern: f.ClientName, Options: "i"}
	}
	if f.Location != "" {
		query["location"] = primitive.Regex{Pattern: f.Location, Options: "i"}
	}
	return query
}
