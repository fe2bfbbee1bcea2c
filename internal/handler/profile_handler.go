package handler

import (
	"net/http"
	"strconv"

	"gamewish/internal/middleware"
	"gamewish/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	wishlistService service.WishlistService
	userService     service.UserService
}

func NewProfileHandler(wishlistService service.WishlistService, userService service.UserService) *ProfileHandler {
	return &ProfileHandler{
		wishlistService: wishlistService,
		userService:     userService,
	}
}

// Profile renders a user's wishlist sorted by wish level, descending
// unless ascending is requested, paginated at ten rows.
// GET /user_profile/:id/?sort=...&page=N
func (h *ProfileHandler) Profile(c *gin.Context) {
	descending := c.Query("sort") != "Priority ascending"

	profile, err := h.wishlistService.Profile(c.Request.Context(), c.Param("id"), descending)
	if err != nil {
		if err == service.ErrNotFound {
			renderNotFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, meta := Paginate(profile.Rows, page, pageSize)

	c.HTML(http.StatusOK, "user_profile.html", gin.H{
		"profileUser": profile.User,
		"games":       items,
		"page":        meta,
		"isOwner":     profile.User.ID == c.GetString(middleware.CtxUserID),
	})
}

// DeletePriority removes one wishlist row and redirects back to the
// profile. Only the row's owner may delete it.
// POST /user_profile/:id/ with game_delete=<priority id>
func (h *ProfileHandler) DeletePriority(c *gin.Context) {
	priorityID, err := strconv.ParseInt(c.PostForm("game_delete"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/user_profile/"+c.Param("id")+"/")
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	if err := h.wishlistService.DeletePriority(c.Request.Context(), actorID, priorityID); err != nil {
		switch err {
		case service.ErrNotFound:
			renderNotFound(c)
		case service.ErrForbidden:
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{})
		default:
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		}
		return
	}

	c.Redirect(http.StatusFound, "/user_profile/"+c.Param("id")+"/")
}

// UserList renders every registered account.
// GET /user_list/
func (h *ProfileHandler) UserList(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "user_list.html", gin.H{"users": users})
}
