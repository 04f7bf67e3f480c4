package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavepoint/social-system/internal/core/ports"
)

// PostHandler exposes the pass-through feed endpoints.
type PostHandler struct {
	posts ports.PostService
}

func NewPostHandler(posts ports.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	UserID string   `json:"userId" validate:"required"`
	Text   string   `json:"text"`
	Media  []string `json:"media"`
	Tags   []string `json:"tags"`
}

// Feed returns all posts, newest first.
//
// @Summary      List the post feed
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.PostView
// @Router       /posts [get]
func (h *PostHandler) Feed(c echo.Context) error {
	views, err := h.posts.Feed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get returns one post by id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  ports.PostView
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	view, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create persists a new post.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  domain.Post
// @Failure      404   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.posts.Create(c.Request().Context(), ports.CreatePostInput{
		AuthorID: req.UserID,
		Text:     req.Text,
		Media:    req.Media,
		Tags:     req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}
