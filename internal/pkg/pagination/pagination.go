package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Params carries the page window parsed from the query string. Pages are
// zero-based.
type Params struct {
	Page int
	Size int
}

func (p Params) Limit() int  { return p.Size }
func (p Params) Offset() int { return p.Page * p.Size }

// FromQuery reads page/size query params, clamping bad values to defaults.
func FromQuery(c *gin.Context) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultSize)))
	if err != nil || size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Params{Page: page, Size: size}
}

// Page is the envelope for paginated list responses.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPage[T any](items []T, p Params, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := total / int64(p.Size)
	if total%int64(p.Size) != 0 {
		pages++
	}
	return Page[T]{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		Total:      total,
		TotalPages: pages,
	}
}
