package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/x/hero"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	service := hero.NewService(hero.NewMemoryRepository(), hero.NewPublisher(nil))
	assert.NoError(t, service.Seed(context.Background(), core.ClassicHeroes))

	h := hero.NewHandler(service)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.GET("/api/heroes", h.List)
	e.GET("/api/heroes/:id", h.Get)
	e.POST("/api/heroes", h.Create)
	e.PUT("/api/heroes/:id", h.Update)
	e.DELETE("/api/heroes/:id", h.Delete)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, server *httptest.Server, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--api", server.URL}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	server := setupServer(t)

	out, err := run(t, server, "", "list")
	assert.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "\n"))
	assert.Contains(t, out, "  11  Mr. Nice\n")
	assert.Contains(t, out, "  20  Tornado\n")
}

func TestDashboard(t *testing.T) {
	server := setupServer(t)

	out, err := run(t, server, "", "dashboard")
	assert.NoError(t, err)
	assert.Equal(t, "Top Heroes\n  12  Narco\n  13  Bombasto\n  14  Celeritas\n  15  Magneta\n", out)
}

func TestTopHeroes(t *testing.T) {
	assert.Empty(t, topHeroes(nil))
	assert.Empty(t, topHeroes(core.ClassicHeroes[:1]))
	assert.Equal(t, core.ClassicHeroes[1:3], topHeroes(core.ClassicHeroes[:3]))
	assert.Equal(t, core.ClassicHeroes[1:5], topHeroes(core.ClassicHeroes))
}

func TestHeroLifecycle(t *testing.T) {
	server := setupServer(t)

	out, err := run(t, server, "", "add", "  Bob ")
	assert.NoError(t, err)
	assert.Equal(t, "  21  Bob\n", out)

	out, err = run(t, server, "", "rename", "21", "Bobby", "Tables")
	assert.NoError(t, err)
	assert.Equal(t, "  21  Bobby Tables\n", out)

	out, err = run(t, server, "", "get", "21")
	assert.NoError(t, err)
	assert.Equal(t, "Bobby Tables details!\nid: 21\nname: Bobby Tables\n", out)

	out, err = run(t, server, "", "delete", "21")
	assert.NoError(t, err)
	assert.Equal(t, "deleted hero 21\n", out)

	_, err = run(t, server, "", "get", "21")
	var notFound core.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestAddRejectsBlankName(t *testing.T) {
	server := setupServer(t)

	_, err := run(t, server, "", "add", "   ")
	assert.EqualError(t, err, "name is required")

	out, err := run(t, server, "", "list")
	assert.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "\n"))
}

func TestInvalidID(t *testing.T) {
	server := setupServer(t)

	_, err := run(t, server, "", "get", "abc")
	assert.Error(t, err)

	_, err = run(t, server, "", "delete", "0")
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	server := setupServer(t)

	out, err := run(t, server, "m\nma\nmag\n", "search", "--quiet-period", "50ms")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "search \"mag\": 2 found\n  15  Magneta\n  19  Magma\n"), out)
}

func TestSearchEmptyTerm(t *testing.T) {
	server := setupServer(t)

	out, err := run(t, server, "\n", "search", "--quiet-period", "20ms")
	assert.NoError(t, err)
	assert.Equal(t, "search \"\": 0 found\n", out)
}

func TestSearchWithoutInput(t *testing.T) {
	server := setupServer(t)

	out, err := run(t, server, "", "search")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestVersion(t *testing.T) {
	Version = "v0.3.1"
	defer func() { Version = "unknown" }()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	assert.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "heroctl v0.3.1-"), out.String())
}
