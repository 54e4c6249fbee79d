package controllers

import (
	"academy/backend/config"
	"academy/backend/mailer"
	"academy/backend/models"
	"academy/backend/utils"
	"academy/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ContactController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Log    zerolog.Logger
	Sender mailer.Sender
}

func NewContactController(db *gorm.DB, cfg *config.Config, log zerolog.Logger, sender mailer.Sender) *ContactController {
	return &ContactController{DB: db, Cfg: cfg, Log: log, Sender: sender}
}

// SendMessage godoc
// @Summary Send a contact message
// @Description Stores the message and notifies the contact inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param input body schema.ContactInput true "Message"
// @Success 201 {object} utils.SuccessResponse{data=models.ContactMessage}
// @Failure 422 {object} utils.ErrorResponse
// @Router /contact [post]
func (cc *ContactController) SendMessage(c *fiber.Ctx) error {
	var input schema.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := cc.DB.Create(&message).Error; err != nil {
		cc.Log.Error().Err(err).Msg("store contact message")
		return utils.InternalServerError(c, "Could not send message")
	}

	// the message is stored; a mail failure does not fail the request
	if cc.Cfg.ContactInbox != "" && cc.Sender != nil {
		if _, err := cc.Sender.Send(c.UserContext(), mailer.ContactNotification(cc.Cfg.ContactInbox, message)); err != nil {
			cc.Log.Error().Err(err).Uint("message_id", message.ID).Msg("contact notification")
		}
	}

	return utils.Created(c, message)
}
