package handler

import (
	"net/http"
	"strconv"

	"gamewish/internal/dto"
	"gamewish/internal/middleware"
	"gamewish/internal/service"

	"github.com/gin-gonic/gin"
)

const pageSize = 10

type GameHandler struct {
	catalogService service.CatalogService
	gameService    service.GameService
}

func NewGameHandler(catalogService service.CatalogService, gameService service.GameService) *GameHandler {
	return &GameHandler{
		catalogService: catalogService,
		gameService:    gameService,
	}
}

// List renders the paginated catalog, optionally filtered by category
// name, always ordered by title ascending.
// GET /game_list/?category=...&page=N
func (h *GameHandler) List(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	rows, err := h.catalogService.ListGames(c.Request.Context(), c.Query("category"))
	if err != nil {
		if err == service.ErrNotFound {
			renderNotFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := Paginate(rows, page, pageSize)

	c.HTML(http.StatusOK, "game_list.html", gin.H{
		"games":      items,
		"categories": categories,
		"page":       meta,
		"isAdmin":    c.GetString(middleware.CtxRole) == "admin",
	})
}

// DeleteFromList removes a game (and its dependent rows) from the
// catalog. The route is admin only.
// POST /game_list/ with game_delete=<id>
func (h *GameHandler) DeleteFromList(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("game_delete"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/game_list/")
		return
	}

	if err := h.catalogService.DeleteGame(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			renderNotFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/game_list/")
}

// Details renders a game's page with its comments and average rating.
// GET /game/:id/
func (h *GameHandler) Details(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	details, err := h.gameService.Details(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			renderNotFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "game_details.html", gin.H{
		"game":       details.Game,
		"comments":   details.Comments,
		"average":    details.Average,
		"rated":      details.Rated,
		"wishLevels": dto.WishLabels,
	})
}

// Act handles the single detail-page form: a comment, a rate or a wish
// level, at most one per submission. Every outcome redirects back to
// the same page; malformed values simply mutate nothing.
// POST /game/:id/
func (h *GameHandler) Act(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}
	userID := c.GetString(middleware.CtxUserID)

	var form dto.GameActionForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/game/"+c.Param("id")+"/")
		return
	}

	actErr := error(nil)
	switch {
	case form.Comment != "":
		actErr = h.gameService.AddComment(c.Request.Context(), userID, id, form.Comment)
	case form.Rate != "":
		rate, err := strconv.ParseFloat(form.Rate, 64)
		if err == nil {
			actErr = h.gameService.SubmitRating(c.Request.Context(), userID, id, rate)
		}
	case form.Wish != "":
		actErr = h.gameService.SubmitWish(c.Request.Context(), userID, id, form.Wish)
	}

	if actErr == service.ErrNotFound {
		renderNotFound(c)
		return
	}
	// Validation failures (ErrInvalidRate, ErrUnknownWish) fall through:
	// nothing was written and the page refresh shows the unchanged state.

	c.Redirect(http.StatusFound, "/game/"+c.Param("id")+"/")
}

// ShowAddGame renders the admin game-creation form.
// GET /add_game/
func (h *GameHandler) ShowAddGame(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "add_game.html", gin.H{"categories": categories, "form": dto.GameForm{}})
}

// AddGame creates a game from the admin form and redirects to the main
// page; validation failures re-render the form with an error.
// POST /add_game/
func (h *GameHandler) AddGame(c *gin.Context) {
	var form dto.GameForm
	if err := c.ShouldBind(&form); err != nil {
		h.rerenderAddGame(c, form, "Please fill in all fields correctly.")
		return
	}

	_, err := h.catalogService.CreateGame(c.Request.Context(), form.Title, form.Year, form.CategoryID)
	switch err {
	case nil:
		c.Redirect(http.StatusFound, "/main/")
	case service.ErrTitleTaken:
		h.rerenderAddGame(c, form, "A game with this title already exists.")
	case service.ErrNotFound:
		h.rerenderAddGame(c, form, "Unknown category.")
	default:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
	}
}

func (h *GameHandler) rerenderAddGame(c *gin.Context, form dto.GameForm, msg string) {
	categories, _ := h.catalogService.Categories(c.Request.Context())
	c.HTML(http.StatusOK, "add_game.html", gin.H{
		"categories": categories,
		"error":      msg,
		"form":       form,
	})
}

// ShowAddCategory renders the admin category-creation form.
// GET /add_category/
func (h *GameHandler) ShowAddCategory(c *gin.Context) {
	c.HTML(http.StatusOK, "add_category.html", gin.H{})
}

// AddCategory creates a category and redirects to the main page.
// POST /add_category/
func (h *GameHandler) AddCategory(c *gin.Context) {
	var form dto.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "add_category.html", gin.H{
			"error": "Please provide a category name.",
		})
		return
	}

	if _, err := h.catalogService.CreateCategory(c.Request.Context(), form.Name); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/main/")
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
}
