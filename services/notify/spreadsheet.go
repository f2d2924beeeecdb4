package notifysvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/guruwali/core"
	"github.com/trezcool/guruwali/core/journal"
)

const (
	msgSyncing    = "Menyinkronkan ke Cloud..."
	msgSynced     = "Data Terkirim ke Cloud!"
	msgSyncFailed = "Gagal Sinkronisasi ke Cloud"
)

var goFunc = func(f func()) { go f() } // mockable

// RemoteSendError reports a push that could not leave the machine.
type RemoteSendError struct {
	Endpoint string
	Target   journal.Target
	Err      error
}

func (e *RemoteSendError) Error() string {
	return fmt.Sprintf("pushing %s to %s: %v", e.Target, e.Endpoint, e.Err)
}

func (e *RemoteSendError) Cause() error  { return e.Err }
func (e *RemoteSendError) Unwrap() error { return e.Err }

type envelope struct {
	Target  journal.Target `json:"target"`
	Payload interface{}    `json:"payload"`
}

type spreadsheetNotifier struct {
	client  *rest.Client
	timeout time.Duration
	banner  core.Banner
	logger  core.Logger
}

var _ journal.Notifier = (*spreadsheetNotifier)(nil) // interface compliance check

// NewSpreadsheetNotifier returns a Notifier posting to a spreadsheet web app (e.g. a Google Apps Script).
// The body is `{"target": ..., "payload": ...}` sent as text/plain, and the response is never read:
// the push counts as delivered as soon as the request went through.
func NewSpreadsheetNotifier(banner core.Banner, logger core.Logger) journal.Notifier {
	return &spreadsheetNotifier{
		client:  &rest.Client{HTTPClient: &http.Client{}},
		timeout: 30 * time.Second,
		banner:  banner,
		logger:  logger,
	}
}

func (n *spreadsheetNotifier) Push(endpoint string, target journal.Target, payload interface{}) {
	endpoint = core.CleanString(endpoint)
	if endpoint == "" {
		return
	}

	n.banner.Show(core.NoticeLoading, msgSyncing)
	goFunc(func() {
		if err := n.send(endpoint, target, payload); err != nil {
			n.logger.Error(err.Error(), err)
			n.banner.Show(core.NoticeError, msgSyncFailed)
			return
		}
		n.banner.Show(core.NoticeSuccess, msgSynced)
	})
}

func (n *spreadsheetNotifier) send(endpoint string, target journal.Target, payload interface{}) error {
	body, err := json.Marshal(envelope{Target: target, Payload: payload})
	if err != nil {
		return &RemoteSendError{Endpoint: endpoint, Target: target, Err: errors.Wrap(err, "encoding payload")}
	}

	req := rest.Request{
		Method:  rest.Post,
		BaseURL: endpoint,
		Headers: map[string]string{"Content-Type": "text/plain"},
		Body:    body,
	}
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if _, err = n.client.SendWithContext(ctx, req); err != nil {
		return &RemoteSendError{Endpoint: endpoint, Target: target, Err: err}
	}
	return nil
}
