package action

import (
	"context"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/apierror"
	"github.com/sirupsen/logrus"
)

const GetScripts = "getScripts"

// Response is the body returned by a successful action.
type Response struct {
	Result string `json:"Result"`
}

var OK = &Response{Result: "OK"}

//go:generate mockery --name=Dispatcher --dir=. --output=./mocks --filename=dispatcher_mock.go --case=underscore --with-expecter
type Dispatcher interface {
	HandleAction(ctx context.Context, name string, params map[string]interface{}) (*Response, error)
}

type dispatcher struct {
	logger   *logrus.Logger
	handlers map[string]func(ctx context.Context, params map[string]interface{}) (*Response, error)
}

func NewDispatcher(logger *logrus.Logger) Dispatcher {
	d := &dispatcher{logger: logger}
	d.handlers = map[string]func(context.Context, map[string]interface{}) (*Response, error){
		GetScripts: d.getScripts,
	}
	return d
}

// HandleAction runs an allow-listed action. Names are case-sensitive.
func (d *dispatcher) HandleAction(ctx context.Context, name string, params map[string]interface{}) (*Response, error) {
	h, ok := d.handlers[name]
	if !ok {
		d.logger.WithField("action", name).Debug("unknown front-end scanner action")
		return nil, apierror.New(apierror.BadAction, "")
	}
	return h(ctx, params)
}

// getScripts is reserved for serving the script list to the UI and does
// nothing yet.
func (d *dispatcher) getScripts(_ context.Context, _ map[string]interface{}) (*Response, error) {
	d.logger.Debug("getScripts called")
	return OK, nil
}
