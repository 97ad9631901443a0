package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"connectfour/communication"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

type Option func(c *Client)

// WithAttempts sets how often a move is requested before giving up.
func WithAttempts(attempts uint) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

// WithRetryDelay sets the base of the exponential backoff between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.delay = delay
	}
}

type Client struct {
	serverURL string
	http      *http.Client
	attempts  uint
	delay     time.Duration
}

// NewClient talks to the agent server at serverURL. A nil httpClient means
// http.DefaultClient.
func NewClient(serverURL string, httpClient *http.Client, options ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		serverURL: serverURL,
		http:      httpClient,
		attempts:  3,
		delay:     100 * time.Millisecond,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// FindMove asks the server for a column. Transport errors and 5xx responses
// are retried with backoff; other failures are returned at once.
func (c *Client) FindMove(ctx context.Context, board *game.Board) (int, error) {
	body, err := json.Marshal(communication.FindMoveRequest{Board: board})
	if err != nil {
		return searcher.NoMove, fmt.Errorf("failed to encode request: %w", err)
	}

	column := searcher.NoMove
	err = retry.Do(
		func() error {
			var err error
			column, err = c.request(ctx, body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Warn().Err(err).Uint("n", n).Msg("move request failed, trying again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return searcher.NoMove, err
	}
	return column, nil
}

func (c *Client) request(ctx context.Context, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+communication.FindMovePath, bytes.NewReader(body))
	if err != nil {
		return searcher.NoMove, retry.Unrecoverable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return searcher.NoMove, fmt.Errorf("failed to request move: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
		if resp.StatusCode < http.StatusInternalServerError {
			return searcher.NoMove, retry.Unrecoverable(err)
		}
		return searcher.NoMove, err
	}

	var move communication.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return searcher.NoMove, retry.Unrecoverable(fmt.Errorf("failed to decode move: %w", err))
	}
	return move.Column, nil
}

// RemoteAgent plays the moves chosen by an agent server.
type RemoteAgent struct {
	client  *Client
	timeout time.Duration
}

func NewRemoteAgent(client *Client, timeout time.Duration) *RemoteAgent {
	return &RemoteAgent{client: client, timeout: timeout}
}

// FindMove resigns (returns searcher.NoMove) when the server cannot be reached
// or the position is not a *game.Board.
func (a *RemoteAgent) FindMove(pos game.Position) int {
	board, ok := pos.(*game.Board)
	if !ok {
		log.Error().Msgf("remote agent cannot send %T", pos)
		return searcher.NoMove
	}
	ctx := context.Background()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	column, err := a.client.FindMove(ctx, board)
	if err != nil {
		log.Error().Err(err).Msg("remote agent failed")
		return searcher.NoMove
	}
	return column
}

func (a *RemoteAgent) String() string {
	return "remote(" + a.client.serverURL + ")"
}
