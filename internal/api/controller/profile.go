package controller

import (
	"strings"
	"time"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/api/response"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profileController struct {
	ProfileUseCase domain.ProfileUC
}

func NewProfileController(pu domain.ProfileUC) *profileController {
	return &profileController{
		ProfileUseCase: pu,
	}
}

func (pc profileController) GetMyProfile(c *fiber.Ctx) error {
	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	profile, err := pc.ProfileUseCase.GetMine(c.Context(), caller)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.SendError(c, fiber.StatusBadRequest, "there is no profile for this user")
		}
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, profile, "")
}

type UpsertProfileReq struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" validate:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	// Skills arrive as a comma separated string on the wire
	Skills    string `json:"skills" validate:"required"`
	Youtube   string `json:"youtube"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func (pc profileController) UpsertProfile(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	body := new(UpsertProfileReq)
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if ve := validateStruct(body); ve != nil {
		return response.SendValidationErrors(c, ve)
	}

	fields := domain.ProfileFields{
		Company:        body.Company,
		Website:        body.Website,
		Location:       body.Location,
		Status:         body.Status,
		Bio:            body.Bio,
		GithubUsername: body.GithubUsername,
		Skills:         splitSkills(body.Skills),
		Social: domain.Social{
			Youtube:   body.Youtube,
			Facebook:  body.Facebook,
			Twitter:   body.Twitter,
			Instagram: body.Instagram,
			Linkedin:  body.Linkedin,
		},
	}

	profile, err := pc.ProfileUseCase.Upsert(ctx, caller, fields)
	if err != nil {
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, profile, "")
}

func (pc profileController) ListProfiles(c *fiber.Ctx) error {
	profiles, err := pc.ProfileUseCase.GetAll(c.Context())
	if err != nil {
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, profiles, "")
}

func (pc profileController) GetProfileByUser(c *fiber.Ctx) error {
	userId, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, "profile not found")
	}

	profile, err := pc.ProfileUseCase.GetByUser(c.Context(), userId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.SendError(c, fiber.StatusBadRequest, "profile not found")
		}
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, profile, "")
}

func (pc profileController) DeleteAccount(c *fiber.Ctx) error {
	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	if err := pc.ProfileUseCase.DeleteAccount(c.Context(), caller); err != nil {
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, nil, "user deleted")
}

type AddExperienceReq struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

func (pc profileController) AddExperience(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	body := new(AddExperienceReq)
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if ve := validateStruct(body); ve != nil {
		return response.SendValidationErrors(c, ve)
	}

	exp := domain.Experience{
		Title:       body.Title,
		Company:     body.Company,
		Location:    body.Location,
		From:        body.From,
		To:          body.To,
		Current:     body.Current,
		Description: body.Description,
	}

	profile, err := pc.ProfileUseCase.AddExperience(ctx, caller, exp)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.SendError(c, fiber.StatusBadRequest, "there is no profile for this user")
		}
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, profile, "")
}

func (pc profileController) RemoveExperience(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	expId, err := primitive.ObjectIDFromHex(c.Params("expId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "experience not found")
	}

	profile, err := pc.ProfileUseCase.RemoveExperience(ctx, caller, expId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.SendError(c, fiber.StatusNotFound, "experience not found")
		}
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, profile, "")
}
