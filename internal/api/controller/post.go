package controller

import (
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/api/response"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type postController struct {
	PostUseCase domain.PostUC
}

func NewPostController(pu domain.PostUC) *postController {
	return &postController{
		PostUseCase: pu,
	}
}

type CreatePostReq struct {
	Text string `json:"text" validate:"required"`
}

func (pc postController) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	body := new(CreatePostReq)
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if ve := validateStruct(body); ve != nil {
		return response.SendValidationErrors(c, ve)
	}

	post, err := pc.PostUseCase.Create(ctx, caller, body.Text)
	if err != nil {
		return response.SendDomainError(c, err)
	}

	return response.SendSuccess(c, post, "post created successfully")
}

func (pc postController) GetPosts(c *fiber.Ctx) error {
	posts, err := pc.PostUseCase.GetAll(c.Context())
	if err != nil {
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, posts, "")
}

func (pc postController) GetPost(c *fiber.Ctx) error {
	postId, err := primitive.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "there is no post")
	}

	post, err := pc.PostUseCase.GetById(c.Context(), postId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.SendError(c, fiber.StatusNotFound, "there is no post")
		}
		return response.SendDomainError(c, err)
	}
	return response.SendSuccess(c, post, "")
}

func (pc postController) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	postId, err := primitive.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "there is no post to delete")
	}

	if err := pc.PostUseCase.Delete(ctx, postId, caller); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return response.SendError(c, fiber.StatusUnauthorized, "you can only delete your own posts")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return response.SendError(c, fiber.StatusNotFound, "there is no post to delete")
		}
		return response.SendDomainError(c, err)
	}

	return response.SendSuccess(c, nil, "post removed")
}

func (pc postController) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	postId, err := primitive.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "there is no post")
	}

	res, err := pc.PostUseCase.Like(ctx, postId, caller)
	if err != nil {
		return response.SendDomainError(c, err)
	}

	if res.NoOp {
		return response.SendSuccess(c, res.Likes, "post already liked")
	}
	return response.SendSuccess(c, res.Likes, "")
}

func (pc postController) UnlikePost(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	postId, err := primitive.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "there is no post")
	}

	res, err := pc.PostUseCase.Unlike(ctx, postId, caller)
	if err != nil {
		return response.SendDomainError(c, err)
	}

	if res.NoOp {
		return response.SendSuccess(c, res.Likes, "post has not been liked")
	}
	return response.SendSuccess(c, res.Likes, "")
}

type AddCommentReq struct {
	Text string `json:"text" validate:"required"`
}

func (pc postController) CommentPost(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	postId, err := primitive.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "there is no post")
	}

	body := new(AddCommentReq)
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if ve := validateStruct(body); ve != nil {
		return response.SendValidationErrors(c, ve)
	}

	post, err := pc.PostUseCase.Comment(ctx, postId, caller, body.Text)
	if err != nil {
		return response.SendDomainError(c, err)
	}

	return response.SendSuccess(c, post, "")
}

func (pc postController) DeleteComment(c *fiber.Ctx) error {
	ctx := c.Context()

	caller, err := GetCallerFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	postId, err := primitive.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "there is no post")
	}

	commentId, err := primitive.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return response.SendError(c, fiber.StatusNotFound, "comment not found")
	}

	comments, err := pc.PostUseCase.DeleteComment(ctx, postId, commentId, caller)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.SendError(c, fiber.StatusNotFound, "comment not found")
		}
		return response.SendDomainError(c, err)
	}

	return response.SendSuccess(c, comments, "")
}
