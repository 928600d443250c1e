package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/tourofheroes/core"
)

const (
	defaultTimeout = 10 * time.Second
	heroesPath     = "/api/heroes"
)

var tracer = otel.Tracer("client")

// Client talks to the heroes api. every call is a single attempt
type Client interface {
	GetHero(ctx context.Context, id uint) (core.Hero, error)
	GetHeroes(ctx context.Context) ([]core.Hero, error)
	Search(ctx context.Context, term string) ([]core.Hero, error)
	Create(ctx context.Context, name string) (core.Hero, error)
	Update(ctx context.Context, hero core.Hero) (core.Hero, error)
	Delete(ctx context.Context, id uint) error
}

type client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the api served at base, e.g. http://localhost:8000
func NewClient(base string) Client {
	return &client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *client) GetHero(ctx context.Context, id uint) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Client.GetHero")
	defer span.End()

	var res core.Envelope[core.Hero]
	err := c.do(ctx, http.MethodGet, heroesPath+"/"+strconv.FormatUint(uint64(id), 10), nil, &res)
	if err != nil {
		span.RecordError(err)
		return core.Hero{}, handleError("GetHero", err)
	}

	return res.Data, nil
}

func (c *client) GetHeroes(ctx context.Context) ([]core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Client.GetHeroes")
	defer span.End()

	var res core.Envelope[[]core.Hero]
	err := c.do(ctx, http.MethodGet, heroesPath, nil, &res)
	if err != nil {
		span.RecordError(err)
		return []core.Hero{}, handleError("GetHeroes", err)
	}
	if res.Data == nil {
		return []core.Hero{}, nil
	}

	return res.Data, nil
}

// Search asks the api for heroes whose name contains term
func (c *client) Search(ctx context.Context, term string) ([]core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Client.Search")
	defer span.End()
	span.SetAttributes(attribute.String("term", term))

	var res core.Envelope[[]core.Hero]
	err := c.do(ctx, http.MethodGet, heroesPath+"?name="+url.QueryEscape(term), nil, &res)
	if err != nil {
		span.RecordError(err)
		return []core.Hero{}, handleError("Search", err)
	}
	if res.Data == nil {
		return []core.Hero{}, nil
	}

	return res.Data, nil
}

func (c *client) Create(ctx context.Context, name string) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Client.Create")
	defer span.End()

	var res core.Envelope[core.Hero]
	err := c.do(ctx, http.MethodPost, heroesPath, map[string]string{"name": name}, &res)
	if err != nil {
		span.RecordError(err)
		return core.Hero{}, handleError("Create", err)
	}

	return res.Data, nil
}

// Update replaces the hero and resolves to the hero that was sent
func (c *client) Update(ctx context.Context, hero core.Hero) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Client.Update")
	defer span.End()

	err := c.do(ctx, http.MethodPut, heroesPath+"/"+strconv.FormatUint(uint64(hero.ID), 10), hero, nil)
	if err != nil {
		span.RecordError(err)
		return core.Hero{}, handleError("Update", err)
	}

	return hero, nil
}

func (c *client) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Client.Delete")
	defer span.End()

	err := c.do(ctx, http.MethodDelete, heroesPath+"/"+strconv.FormatUint(uint64(id), 10), nil, nil)
	if err != nil {
		span.RecordError(err)
		return handleError("Delete", err)
	}

	return nil
}

func (c *client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, out)
}

func statusError(status int, raw []byte) error {
	var res core.ErrorResponse
	_ = json.Unmarshal(raw, &res)

	switch status {
	case http.StatusNotFound:
		return core.NewErrorNotFound()
	case http.StatusBadRequest:
		return core.NewErrorInvalidArgument(res.Message)
	}

	if res.Error != "" {
		return fmt.Errorf("unexpected status %d: %s", status, res.Error)
	}
	return fmt.Errorf("unexpected status %d", status)
}

func handleError(operation string, err error) error {
	slog.Error(
		"an error occurred",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	return err
}
