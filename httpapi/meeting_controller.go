package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sakshisharma25/meetyfi-b/meeting"
)

type meetingController struct {
	meetings *meeting.Service
}

func (ctrl *meetingController) Create(c *fiber.Ctx) error {
	var in meeting.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return badPayload(err)
	}

	created, err := ctrl.meetings.Create(c.UserContext(), CurrentUser(c).ID, in)
	if err != nil {
		return err
	}

	return c.JSON(created)
}

func (ctrl *meetingController) List(c *fiber.Ctx) error {
	meetings, err := ctrl.meetings.List(c.UserContext(), CurrentUser(c).ID, filterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(meetings)
}

func (ctrl *meetingController) ListAll(c *fiber.Ctx) error {
	meetings, err := ctrl.meetings.ListAll(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(meetings)
}

func (ctrl *meetingController) Get(c *fiber.Ctx) error {
	m, err := ctrl.meetings.Get(c.UserContext(), CurrentUser(c).ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (ctrl *meetingController) Cancel(c *fiber.Ctx) error {
	if _, err := ctrl.meetings.Cancel(c.UserContext(), CurrentUser(c).ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Meeting cancelled successfully"})
}

func filterFromQuery(c *fiber.Ctx) meeting.Filter {
	return meeting.Filter{
		Date:       c.Query("date"),
		ClientName: c.Query("client_name"),
		Location:   c.Query("location"),
	}
}
