package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillnet_backend/internal/models"
	"skillnet_backend/test/helpers"
)

func decodeProjects(t *testing.T, body string) []map[string]interface{} {
	var projects []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &projects))
	return projects
}

// seedProjects creates three projects with distinct timestamps so
// ordering is deterministic.
func seedProjects(t *testing.T, ts *helpers.TestServer, ownerID string) (oldest, middle, newest *models.Project) {
	oldest = helpers.CreateProject(t, ts.DB, ownerID, "Old CLI Tool", "Tools", "Go", "DevOps", []string{"go", "cobra"})
	middle = helpers.CreateProject(t, ts.DB, ownerID, "Mid Web App", "Web", "Go", "Fintech", []string{"go", "gin"})
	newest = helpers.CreateProject(t, ts.DB, ownerID, "New Mobile App", "Mobile", "Kotlin", "Health", []string{"kotlin"})

	base := time.Now().Add(-time.Hour)
	ts.DB.Model(oldest).Update("created_at", base)
	ts.DB.Model(middle).Update("created_at", base.Add(10*time.Minute))
	ts.DB.Model(newest).Update("created_at", base.Add(20*time.Minute))
	return oldest, middle, newest
}

func TestProjectList_EmptyFilterReturnsAllNewestFirst(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	oldest, middle, newest := seedProjects(t, ts, owner.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects", "", nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	projects := decodeProjects(t, body)
	require.Len(t, projects, 3)
	assert.Equal(t, newest.ID, projects[0]["id"])
	assert.Equal(t, middle.ID, projects[1]["id"])
	assert.Equal(t, oldest.ID, projects[2]["id"])
}

func TestProjectList_CategoryFilter(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	_, middle, newest := seedProjects(t, ts, owner.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects?categories=Web&categories=Mobile", "", nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	projects := decodeProjects(t, body)
	require.Len(t, projects, 2)
	assert.Equal(t, newest.ID, projects[0]["id"])
	assert.Equal(t, middle.ID, projects[1]["id"])
}

func TestProjectList_SearchTermIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	seedProjects(t, ts, owner.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects?searchTerm=mobile", "", nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	projects := decodeProjects(t, body)
	require.Len(t, projects, 1)
	assert.Equal(t, "New Mobile App", projects[0]["title"])
}

func TestProjectList_ConjunctiveFilters(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	seedProjects(t, ts, owner.ID)

	// Category matches two projects, technology narrows it to one.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects?categories=Web&categories=Mobile&technologies=Kotlin", "", nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	projects := decodeProjects(t, body)
	require.Len(t, projects, 1)
	assert.Equal(t, "New Mobile App", projects[0]["title"])
}

func TestProjectList_Pagination(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	_, middle, _ := seedProjects(t, ts, owner.ID)

	// Window in the middle.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects?skip=1&take=1", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	projects := decodeProjects(t, body)
	require.Len(t, projects, 1)
	assert.Equal(t, middle.ID, projects[0]["id"])

	// Skip beyond the result set yields an empty page, not an error.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects?skip=1000", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Len(t, decodeProjects(t, body), 0)

	// An explicit take=0 yields an empty page too.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects?take=0", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Len(t, decodeProjects(t, body), 0)
}

func TestProjectSearch_MatchesByTerm(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	seedProjects(t, ts, owner.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects/search?searchTerm=mobile", "", nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	projects := decodeProjects(t, body)
	require.Len(t, projects, 1)
	assert.Equal(t, "New Mobile App", projects[0]["title"])
}

func TestProjectSearch_BlankTerm_IsBadRequest(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	// Empty value and missing parameter are both rejected.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/projects/search?searchTerm=", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/projects/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestProjectList_SearchWithNoMatches(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	seedProjects(t, ts, owner.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects?searchTerm=doesnotexist", "", nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Len(t, decodeProjects(t, body), 0)
}

func TestProjectCreate_And_GetByID(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAndLoginUser(t, ts, "Creator", "creator@test.com", "SuperSecret1")

	createBody := map[string]interface{}{
		"title":       "Skill Exchange",
		"description": "A marketplace for trading skills",
		"category":    "Web",
		"technology":  "Go",
		"domain":      "Education",
		"tech_stack":  []string{"go", "gin", "postgres"},
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects", token, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID        string   `json:"id"`
		TechStack []string `json:"tech_stack"`
		User      struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"go", "gin", "postgres"}, created.TechStack)
	assert.Equal(t, "creator@test.com", created.User.Email)

	getRes, getBody := ts.SendRequest(t, http.MethodGet, "/api/v1/projects/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode, getBody)
	assert.Contains(t, getBody, "Skill Exchange")
}

func TestProjectGet_Unknown_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects/00000000-0000-0000-0000-000000000000", "", nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Project not found")
}

func TestProjectUpdate_NonOwner_Forbidden(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	intruderToken, _ := helpers.CreateAndLoginUser(t, ts, "Intruder", "intruder@test.com", "SuperSecret1")
	project := helpers.CreateProject(t, ts.DB, owner.ID, "Owned Project", "Web", "Go", "Fintech", nil)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/projects/"+project.ID, intruderToken, map[string]interface{}{
		"title": "Hijacked",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "your own projects")

	var title string
	ts.DB.Model(&models.Project{}).Where("id = ?", project.ID).Pluck("title", &title)
	assert.Equal(t, "Owned Project", title)
}

func TestProjectUpdate_PartialFieldsOnly(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	project := helpers.CreateProject(t, ts.DB, owner.ID, "Original Title", "Web", "Go", "Fintech", nil)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/projects/"+project.ID, token, map[string]interface{}{
		"description": "Updated description",
	})

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Original Title")
	assert.Contains(t, body, "Updated description")
}

func TestProjectDelete_OwnerOnly(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	project := helpers.CreateProject(t, ts.DB, owner.ID, "Doomed Project", "Web", "Go", "Fintech", nil)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/projects/"+project.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	getRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/projects/"+project.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, getRes.StatusCode)
}

func TestMyProjects_ListsOnlyOwn(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, owner := helpers.CreateAndLoginUser(t, ts, "Owner", "owner@test.com", "SuperSecret1")
	_, other := helpers.CreateAndLoginUser(t, ts, "Other", "other@test.com", "SuperSecret1")
	helpers.CreateProject(t, ts.DB, owner.ID, "Mine", "Web", "Go", "Fintech", nil)
	helpers.CreateProject(t, ts.DB, other.ID, "Theirs", "Web", "Go", "Fintech", nil)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/me/projects", token, nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	projects := decodeProjects(t, body)
	require.Len(t, projects, 1)
	assert.Equal(t, "Mine", projects[0]["title"])
}
