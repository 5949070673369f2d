package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
)

const maxLimit = 200

// parseLimitOffset reads optional limit/offset query params. Limit 0 means
// the caller asked for no paging.
func parseLimitOffset(c *fiber.Ctx) (limit, offset int) {
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxLimit {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// page applies limit/offset to a list. Without paging params the list is
// returned whole, and the response is always a JSON array.
func page[T any](c *fiber.Ctx, items []T) []T {
	limit, offset := parseLimitOffset(c)
	if offset >= len(items) {
		if offset == 0 {
			return items
		}
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func parseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return presenter.ErrInvalidJSON
	}
	return nil
}
