package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"bookvault/internal/middleware"
	"bookvault/internal/service"
	"bookvault/internal/util"

	"github.com/gin-gonic/gin"
)

// maxCoverImageSize caps uploaded cover files at 5 MB.
const maxCoverImageSize = 5 << 20

// BookHandler 负责书籍相关接口
type BookHandler struct {
	Books *service.BookService
}

func NewBookHandler(books *service.BookService) *BookHandler {
	return &BookHandler{Books: books}
}

// ---------- 请求/响应结构 ----------

type createBookReq struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Author      string `json:"author" form:"author" binding:"required"`
	Description string `json:"description" form:"description"`
	Year        int    `json:"year" form:"year" binding:"required"`
}

type updateBookReq struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	Year        *int    `json:"year"`
}

// ---------- 新增 ----------

// CreateBook accepts JSON, or multipart form data with an optional cover
// image under the "image" field.
func (h *BookHandler) CreateBook(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	var req createBookReq
	var image *service.CoverImage

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Title = strings.TrimSpace(c.PostForm("title"))
		req.Author = strings.TrimSpace(c.PostForm("author"))
		req.Description = c.PostForm("description")
		year, err := strconv.Atoi(c.PostForm("year"))
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "year must be a number")
			return
		}
		req.Year = year

		fileHeader, err := c.FormFile("image")
		if err == nil && fileHeader != nil {
			if fileHeader.Size > maxCoverImageSize {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cover image too large, max 5 MB")
				return
			}
			f, err := fileHeader.Open()
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot read cover image")
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot read cover image")
				return
			}
			image = &service.CoverImage{
				Data:        data,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Filename:    fileHeader.Filename,
			}
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		req.Author = strings.TrimSpace(req.Author)
	}

	if err := util.ValidateTitle(req.Title); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "title is required")
		return
	}
	if req.Author == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "author is required")
		return
	}
	if err := util.ValidateYear(req.Year); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid year")
		return
	}

	book, err := h.Books.Create(c.Request.Context(), user.ID, service.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Year:        req.Year,
	}, image)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Created(c, util.Response{
		"book": book,
	})
}

// ---------- 查询 ----------

// ListBooks returns the caller's collection, newest first.
func (h *BookHandler) ListBooks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	books, err := h.Books.List(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"books": books,
	})
}

// GetBook returns one book; 404 when absent, 403 when owned by another user.
func (h *BookHandler) GetBook(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	book, err := h.Books.Get(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"book": book,
	})
}

// ---------- 修改 ----------

// UpdateBook applies a partial update; only fields present in the body change.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	var req updateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if err := util.ValidateTitle(trimmed); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "title cannot be empty")
			return
		}
		req.Title = &trimmed
	}
	if req.Year != nil {
		if err := util.ValidateYear(*req.Year); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid year")
			return
		}
	}

	book, err := h.Books.Update(c.Request.Context(), c.Param("id"), user.ID, service.UpdateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Year:        req.Year,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"book": book,
	})
}

// ---------- 删除 ----------

func (h *BookHandler) DeleteBook(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	if err := h.Books.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---------- 统计 ----------

// GetStats returns collection totals for the caller.
func (h *BookHandler) GetStats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	stats, err := h.Books.Stats(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"stats": stats,
	})
}
