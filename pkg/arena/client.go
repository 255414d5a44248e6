package arena

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MaxPageSize is the server-side ceiling on GetTasks page sizes, enforced
// client-side to fail fast.
const MaxPageSize = 50

// Client talks to a challenge API server on behalf of a single team.
//
// Secret and Round are set during construction. Both are plain exported
// fields: callers may rebind them at runtime, but no Client method changes
// them and access is not synchronized. Use one Client per goroutine or
// serialize access externally.
type Client struct {
	// Secret is the team credential merged into every request.
	Secret string
	// Round scopes task creation and task listing.
	Round Round

	baseURL string // server root with the "/api" suffix, no trailing slash
	http    *http.Client
	now     func() time.Time
}

// New creates a Client bound to the given server and team credential.
//
// Exactly one round-resolution path runs. With WithRoundID the client
// synthesizes an always-active round and performs no network call. With
// WithChallengeID it fetches that challenge and binds the round whose
// [start, end] interval contains the current instant, failing with
// ErrNoRoundCurrentlyRunning when none does. Supplying neither fails with
// ErrInvalidArgument; supplying both runs the round-id path.
//
// baseURL is the challenge site root (e.g. "https://challenge.example.com/").
// It must not include the "api/" suffix; all subpaths are resolved under it
// automatically.
func New(ctx context.Context, secret, baseURL string, opts ...Option) (*Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", ErrInvalidArgument, baseURL, err)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	c := &Client{
		Secret:  secret,
		baseURL: strings.TrimRight(base.JoinPath("api").String(), "/"),
		http:    httpClient,
		now:     cfg.now,
	}

	switch {
	case cfg.roundID != "":
		c.Round = AlwaysActiveRound(cfg.roundID)
	case cfg.challengeID != "":
		round, err := c.currentRound(ctx, cfg.challengeID)
		if err != nil {
			return nil, err
		}
		c.Round = round
	default:
		return nil, fmt.Errorf("%w: either a round id or a challenge id must be given", ErrInvalidArgument)
	}

	return c, nil
}

// FetchNewTask asks the server to create a new task on the bound round and
// returns it. An empty taskType lets the server pick a random type; a
// non-empty taskType requires the round to allow type choice.
//
// When the server answers 400 the round has no tasks of the requested type
// left and a *TasksOverError is returned.
func (c *Client) FetchNewTask(ctx context.Context, taskType string) (*Task, error) {
	params := url.Values{}
	params.Set("round", c.Round.ID)
	if taskType != "" {
		if !c.Round.CanChooseType {
			return nil, fmt.Errorf("%w: choosing the task type is not allowed in this round", ErrInvalidArgument)
		}
		params.Set("type", taskType)
	}

	body, err := c.post(ctx, params, nil, "tasks")
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusBadRequest {
			return nil, &TasksOverError{TaskType: taskType}
		}
		return nil, err
	}

	return DecodeTask(body)
}

// SubmitAnswer submits an answer for the given task and returns the new task
// snapshot. Callers inspect its Status to learn whether the answer was
// accepted.
func (c *Client) SubmitAnswer(ctx context.Context, taskID, answer string) (*Task, error) {
	body, err := c.post(ctx, nil, submitAnswerRequest{Answer: answer}, "tasks", taskID)
	if err != nil {
		return nil, err
	}
	return DecodeTask(body)
}

// GetTasks lists existing tasks of the given type and status on the bound
// round, paginated by offset and count. It does not create new tasks.
// count must not exceed MaxPageSize.
func (c *Client) GetTasks(ctx context.Context, taskType string, status TaskStatus, offset, count int) ([]*Task, error) {
	if count > MaxPageSize {
		return nil, fmt.Errorf("%w: count has to be <= %d", ErrInvalidArgument, MaxPageSize)
	}

	params := url.Values{}
	params.Set("round", c.Round.ID)
	params.Set("type", taskType)
	params.Set("status", strconv.Itoa(int(status)))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("count", strconv.Itoa(count))

	body, err := c.get(ctx, params, "tasks")
	if err != nil {
		return nil, err
	}
	return DecodeTasks(body)
}

// GetTask fetches a single task by id. The lookup is not scoped to the bound
// round.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	body, err := c.get(ctx, nil, "tasks", id)
	if err != nil {
		return nil, err
	}
	return DecodeTask(body)
}

// GetChallenge fetches a challenge and its rounds by id.
func (c *Client) GetChallenge(ctx context.Context, id string) (*Challenge, error) {
	// The challenge endpoint requires the trailing slash.
	body, err := c.get(ctx, nil, "challenges", id, "")
	if err != nil {
		return nil, err
	}
	return DecodeChallenge(body)
}

// currentRound resolves the round of the given challenge whose interval
// contains the current instant.
func (c *Client) currentRound(ctx context.Context, challengeID string) (Round, error) {
	challenge, err := c.GetChallenge(ctx, challengeID)
	if err != nil {
		return Round{}, err
	}

	now := c.now().UTC()
	for _, round := range challenge.Rounds {
		if round.Contains(now) {
			return round, nil
		}
	}

	return Round{}, ErrNoRoundCurrentlyRunning
}
