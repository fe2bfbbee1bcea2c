package handler

import (
	"net/http"
	"net/url"
	"testing"

	"gamewish/internal/models"
	"gamewish/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGameList_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/game_list/", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestGameList_OK(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.catalog.On("Categories", mock.Anything).Return([]models.Category{{ID: 1, Name: "Shooter"}}, nil)
	env.catalog.On("ListGames", mock.Anything, "").Return([]service.GameRow{
		{Game: models.Game{ID: 1, Title: "DOOM", Year: 2016}, Average: 8.5},
		{Game: models.Game{ID: 2, Title: "Quake", Year: 1996}, Average: 0.0},
	}, nil)

	w := env.get("/game_list/", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DOOM")
	assert.Contains(t, w.Body.String(), "Quake")
}

func TestGameList_CategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.catalog.On("Categories", mock.Anything).Return([]models.Category{}, nil)
	env.catalog.On("ListGames", mock.Anything, "Shooter").Return([]service.GameRow{}, nil)

	w := env.get("/game_list/?category=Shooter", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	env.catalog.AssertExpectations(t)
}

func TestGameList_UnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.catalog.On("Categories", mock.Anything).Return([]models.Category{}, nil)
	env.catalog.On("ListGames", mock.Anything, "Nope").Return(nil, service.ErrNotFound)

	w := env.get("/game_list/?category=Nope", cookie)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGameDelete_NonAdmin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	w := env.postForm("/game_list/", url.Values{"game_delete": {"1"}}, cookie)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env.catalog.AssertNotCalled(t, "DeleteGame")
}

func TestGameDelete_Admin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin-1", "root", models.RoleAdmin)
	env.catalog.On("DeleteGame", mock.Anything, int64(1)).Return(nil)

	w := env.postForm("/game_list/", url.Values{"game_delete": {"1"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/game_list/", w.Header().Get("Location"))
	env.catalog.AssertExpectations(t)
}

func TestGameDetails_OK(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.game.On("Details", mock.Anything, int64(1)).Return(&service.GameDetails{
		Game:        models.Game{ID: 1, Title: "DOOM", Year: 2016},
		Comments:    []models.Comment{},
		Average:     8.5,
		Rated:       true,
		RatingCount: 3,
	}, nil)

	w := env.get("/game/1/", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DOOM")
	assert.Contains(t, w.Body.String(), "8.5")
}

func TestGameDetails_NotFound(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.game.On("Details", mock.Anything, int64(999)).Return(nil, service.ErrNotFound)

	w := env.get("/game/999/", cookie)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGameAct_Rate(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.game.On("SubmitRating", mock.Anything, "user-1", int64(1), 9.5).Return(nil)

	w := env.postForm("/game/1/", url.Values{"rate": {"9.5"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/game/1/", w.Header().Get("Location"))
	env.game.AssertExpectations(t)
}

func TestGameAct_InvalidRateStillRedirects(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.game.On("SubmitRating", mock.Anything, "user-1", int64(1), 0.4).Return(service.ErrInvalidRate)

	w := env.postForm("/game/1/", url.Values{"rate": {"0.4"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/game/1/", w.Header().Get("Location"))
}

func TestGameAct_Comment(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.game.On("AddComment", mock.Anything, "user-1", int64(1), "rip and tear").Return(nil)

	w := env.postForm("/game/1/", url.Values{"comment": {"rip and tear"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	env.game.AssertExpectations(t)
}

func TestGameAct_Wish(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.game.On("SubmitWish", mock.Anything, "user-1", int64(1), "I must play!").Return(nil)

	w := env.postForm("/game/1/", url.Values{"wish": {"I must play!"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	env.game.AssertExpectations(t)
}

func TestGameAct_UnknownGame(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	env.game.On("AddComment", mock.Anything, "user-1", int64(999), "hello").Return(service.ErrNotFound)

	w := env.postForm("/game/999/", url.Values{"comment": {"hello"}}, cookie)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddGame_NonAdmin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "user-1", "alice", models.RoleUser)

	w := env.get("/add_game/", cookie)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddGame_Admin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin-1", "root", models.RoleAdmin)

	env.catalog.On("CreateGame", mock.Anything, "DOOM", 2016, int64(1)).
		Return(&models.Game{ID: 1, Title: "DOOM"}, nil)

	w := env.postForm("/add_game/", url.Values{
		"title":    {"DOOM"},
		"year":     {"2016"},
		"category": {"1"},
	}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/main/", w.Header().Get("Location"))
}

func TestAddGame_DuplicateTitle(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin-1", "root", models.RoleAdmin)

	env.catalog.On("CreateGame", mock.Anything, "DOOM", 2016, int64(1)).
		Return(nil, service.ErrTitleTaken)
	env.catalog.On("Categories", mock.Anything).Return([]models.Category{}, nil)

	w := env.postForm("/add_game/", url.Values{
		"title":    {"DOOM"},
		"year":     {"2016"},
		"category": {"1"},
	}, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestAddCategory_Admin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin-1", "root", models.RoleAdmin)

	env.catalog.On("CreateCategory", mock.Anything, "Shooter").
		Return(&models.Category{ID: 1, Name: "Shooter"}, nil)

	w := env.postForm("/add_category/", url.Values{"name": {"Shooter"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/main/", w.Header().Get("Location"))
}
