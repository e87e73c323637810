package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-system/internal/api/flash"
	"github.com/inkwell/blog-system/internal/api/metrics"
	"github.com/inkwell/blog-system/internal/api/middleware"
	"github.com/inkwell/blog-system/internal/core/domain"
	"github.com/inkwell/blog-system/internal/core/ports"
	"github.com/inkwell/blog-system/internal/infrastructure/storage"
)

// PostHandler handles post creation and the blog/profile views.
type PostHandler struct {
	posts   ports.PostService
	uploads *storage.LocalStore
	flashes *flash.Manager
}

func NewPostHandler(posts ports.PostService, uploads *storage.LocalStore, flashes *flash.Manager) *PostHandler {
	return &PostHandler{posts: posts, uploads: uploads, flashes: flashes}
}

// NewPostForm renders GET /post/:username, the post-creation form.
func (h *PostHandler) NewPostForm(c echo.Context) error {
	user, err := h.posts.AuthorByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}
	return render(c, h.flashes, "post", echo.Map{"User": user})
}

// Create handles POST /post: multipart form with title, content1, content2
// and up to two image files pic1/pic2.
func (h *PostHandler) Create(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		h.flashes.Error(c, "Invalid post form.")
		return c.Redirect(http.StatusFound, "/post/"+claims.Username)
	}
	if err := c.Validate(&req); err != nil {
		h.flashes.Error(c, err.Error())
		return c.Redirect(http.StatusFound, "/post/"+claims.Username)
	}

	pic1, err := h.storedUpload(c, "pic1")
	if err != nil {
		return h.uploadError(c, claims.Username, err)
	}
	pic2, err := h.storedUpload(c, "pic2")
	if err != nil {
		return h.uploadError(c, claims.Username, err)
	}

	if _, err := h.posts.CreatePost(c.Request().Context(), ports.CreatePostInput{
		AuthorEmail: claims.Email,
		Title:       req.Title,
		Content1:    req.Content1,
		Content2:    req.Content2,
		Pic1:        pic1,
		Pic2:        pic2,
	}); err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	h.flashes.Success(c, "Post created successfully!")
	return c.Redirect(http.StatusFound, "/blogs/"+claims.Username)
}

func (h *PostHandler) uploadError(c echo.Context, username string, err error) error {
	if errors.Is(err, storage.ErrNotImage) {
		h.flashes.Error(c, "Only image uploads are allowed.")
		return c.Redirect(http.StatusFound, "/post/"+username)
	}
	return err
}

// storedUpload saves the named file part when present. An absent part is
// not an error: the post simply has no image in that slot.
func (h *PostHandler) storedUpload(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	name, err := h.uploads.SaveImage(fh)
	if err != nil {
		return "", err
	}
	metrics.UploadsStoredTotal.Inc()
	return name, nil
}

// Blogs renders GET /blogs/:username, the user's post listing.
func (h *PostHandler) Blogs(c echo.Context) error {
	user, posts, err := h.posts.PostsByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.flashes.Error(c, "User not found.")
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return render(c, h.flashes, "blogs", echo.Map{"User": user, "Posts": posts})
}

// Single renders GET /blog/:id, one post with its author.
func (h *PostHandler) Single(c echo.Context) error {
	post, author, err := h.posts.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			h.flashes.Error(c, "Post not found.")
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return render(c, h.flashes, "single_post", echo.Map{"Post": post, "Author": author})
}

// Profile renders GET /profile/:username with the user's owned posts.
func (h *PostHandler) Profile(c echo.Context) error {
	user, posts, err := h.posts.PostsByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.flashes.Error(c, "User not found.")
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return render(c, h.flashes, "profile", echo.Map{"User": user, "Posts": posts})
}
