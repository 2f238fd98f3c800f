package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shoplist/internal/domain"
	applog "shoplist/internal/log"
	"shoplist/internal/services"
	"shoplist/internal/validate"
	"shoplist/internal/wire"
)

type ShoppingListHandler struct {
	Lists *services.ShoppingListService
}

func toWire(l domain.ShoppingList) wire.ShoppingList {
	src := l.Items() // decode the document once
	items := make([]wire.Item, 0, len(src))
	for _, it := range src {
		items = append(items, wire.Item{ID: it.ID, Name: it.Name, Completed: it.Completed, AddedAt: it.AddedAt})
	}
	return wire.ShoppingList{
		Awid:      l.Awid,
		ID:        l.ID,
		Name:      l.Name,
		Category:  l.Category,
		State:     l.State,
		OwnerID:   l.OwnerID,
		Items:     items,
		Done:      l.Done,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toSummary(l domain.ShoppingList) wire.ListSummary {
	return wire.ListSummary{
		Awid:      l.Awid,
		ID:        l.ID,
		Name:      l.Name,
		State:     l.State,
		OwnerID:   l.OwnerID,
		ItemCount: len(l.Items()),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (h *ShoppingListHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&in); err != nil {
		return validationFailed(c, []string{"Request body must be valid JSON"})
	}
	if errs := validate.CreateList(in.Name, in.Category); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	l, err := h.Lists.Create(callerIdentity(c), in.Name, in.Category)
	if err != nil {
		applog.Error(c, "shoppinglist.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, wire.KindServerError, "Internal server error", nil)
	}
	applog.Audit(c, "shoppinglist.create", map[string]any{"id": l.ID})
	return c.JSON(toWire(l))
}

func (h *ShoppingListHandler) Get(c *fiber.Ctx) error {
	id := c.Query("id")
	if errs := validate.ListID(id); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	l, err := h.Lists.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, wire.KindNotFound, "Shopping list not found", map[string]any{"id": id})
	}
	if err != nil {
		applog.Error(c, "shoppinglist.get.fail", err, map[string]any{"id": id})
		return jsonError(c, fiber.StatusInternalServerError, wire.KindServerError, "Internal server error", nil)
	}
	return c.JSON(toWire(l))
}

func (h *ShoppingListHandler) MyList(c *fiber.Ctx) error {
	pageIndex := c.QueryInt("pageIndex", 0)
	pageSize := c.QueryInt("pageSize", services.DefaultPageSize)

	page, err := h.Lists.MyList(callerIdentity(c), pageIndex, pageSize)
	if err != nil {
		applog.Error(c, "shoppinglist.mylist.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, wire.KindServerError, "Internal server error", nil)
	}

	summaries := make([]wire.ListSummary, 0, len(page.Items))
	for _, l := range page.Items {
		summaries = append(summaries, toSummary(l))
	}
	return c.JSON(wire.SummaryPage{
		ItemList: summaries,
		PageInfo: wire.PageInfo{
			PageIndex:  page.PageIndex,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

func (h *ShoppingListHandler) Update(c *fiber.Ctx) error {
	var in struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Done *bool  `json:"done"`
	}
	if err := c.BodyParser(&in); err != nil {
		return validationFailed(c, []string{"Request body must be valid JSON"})
	}
	if errs := validate.UpdateList(in.ID, in.Name); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	l, err := h.Lists.Update(in.ID, callerIdentity(c), in.Name, in.Done)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, wire.KindNotFound, "Shopping list not found", map[string]any{"id": in.ID})
	case errors.Is(err, services.ErrUnauthorized):
		applog.Audit(c, "shoppinglist.update.denied", map[string]any{"id": in.ID})
		return jsonError(c, fiber.StatusForbidden, wire.KindUnauthorized, "Only the owner can update this shopping list", map[string]any{"id": in.ID})
	case err != nil:
		applog.Error(c, "shoppinglist.update.fail", err, map[string]any{"id": in.ID})
		return jsonError(c, fiber.StatusInternalServerError, wire.KindServerError, "Internal server error", nil)
	}
	applog.Audit(c, "shoppinglist.update", map[string]any{"id": l.ID})
	return c.JSON(toWire(l))
}

func (h *ShoppingListHandler) Delete(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return validationFailed(c, []string{"Request body must be valid JSON"})
	}
	if errs := validate.ListID(in.ID); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	l, err := h.Lists.Delete(in.ID, callerIdentity(c))
	switch {
	case errors.Is(err, services.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, wire.KindNotFound, "Shopping list not found", map[string]any{"id": in.ID})
	case errors.Is(err, services.ErrUnauthorized):
		applog.Audit(c, "shoppinglist.delete.denied", map[string]any{"id": in.ID})
		return jsonError(c, fiber.StatusForbidden, wire.KindUnauthorized, "Only the owner can delete this shopping list", map[string]any{"id": in.ID})
	case err != nil:
		applog.Error(c, "shoppinglist.delete.fail", err, map[string]any{"id": in.ID})
		return jsonError(c, fiber.StatusInternalServerError, wire.KindServerError, "Internal server error", nil)
	}
	applog.Audit(c, "shoppinglist.delete", map[string]any{"id": l.ID})
	return c.JSON(wire.DeleteResult{Success: true, ID: l.ID, Awid: l.Awid})
}
