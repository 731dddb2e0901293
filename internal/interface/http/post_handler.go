package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

const maxCoverBytes = 5 << 20

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// postJSON renders author as the populated summary when available and as the
// bare author id otherwise.
type postJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    any       `json:"author"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toPostJSON(p *entity.Post) postJSON {
	var author any = p.AuthorID
	if p.Author != nil {
		author = p.Author
	}
	return postJSON{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    author,
		CoverURL:  p.CoverURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostList(posts []entity.Post) []postJSON {
	out := make([]postJSON, 0, len(posts))
	for i := range posts {
		out = append(out, toPostJSON(&posts[i]))
	}
	return out
}

// fail maps a tagged error to the legacy message shape. Untagged and internal
// errors become 500 with fallback as the message.
func (h *PostHandler) fail(c *gin.Context, err error, fallback string) {
	if ae, ok := apperror.From(err); ok && ae.Kind != apperror.Internal {
		response.Message(c, ae.StatusCode(), ae.Message)
		return
	}
	h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(fallback)
	response.MessageErr(c, http.StatusInternalServerError, fallback, err)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Error fetching posts")
		return
	}
	c.JSON(http.StatusOK, toPostList(posts))
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Error fetching post")
		return
	}
	c.JSON(http.StatusOK, toPostJSON(p))
}

func (h *PostHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	posts, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		h.fail(c, err, "Error searching posts")
		return
	}
	c.JSON(http.StatusOK, toPostList(posts))
}

func (h *PostHandler) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token provided")
		return
	}
	var req createPostRequest
	if !bindJSON(c, &req, "Please provide title and content") {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), principal, req.Title, req.Content)
	if err != nil {
		h.fail(c, err, "Error creating post")
		return
	}
	c.JSON(http.StatusCreated, toPostJSON(p))
}

func (h *PostHandler) Update(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token provided")
		return
	}
	var req updatePostRequest
	if !bindJSON(c, &req, "Invalid post payload") {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), principal, c.Param("id"), entity.PostPatch{Title: req.Title, Content: req.Content})
	if err != nil {
		h.fail(c, err, "Error updating post")
		return
	}
	c.JSON(http.StatusOK, toPostJSON(p))
}

func (h *PostHandler) Delete(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token provided")
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		h.fail(c, err, "Error deleting post")
		return
	}
	response.Message(c, http.StatusOK, "Post deleted successfully")
}

// UploadCover accepts a multipart "file" field holding an image.
func (h *PostHandler) UploadCover(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token provided")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Please provide a cover image")
		return
	}
	if fh.Size > maxCoverBytes {
		response.Message(c, http.StatusBadRequest, "Cover image too large")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err, "Error uploading cover")
		return
	}
	defer f.Close()

	p, err := h.Svc.UploadCover(c.Request.Context(), principal, c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.fail(c, err, "Error uploading cover")
		return
	}
	c.JSON(http.StatusOK, toPostJSON(p))
}
