package callback

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/alert"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/apierror"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

var (
	errMissingAlert = errors.New("alert object is missing")
	errFieldMissing = errors.New("field is missing")
	errFieldType    = errors.New("field has the wrong type")
)

//go:generate mockery --name=Handler --dir=. --output=./mocks --filename=callback_handler_mock.go --case=underscore --with-expecter
type Handler interface {
	// HandleCallback records the finding described by body. Every failure is
	// reported as url_not_found carrying requestURL.
	HandleCallback(ctx context.Context, body []byte, requestURL string) error
}

type handler struct {
	logger   *logrus.Logger
	sink     alert.Sink
	resolver history.Resolver
	parsers  fastjson.ParserPool
}

// NewHandler builds the callback handler. resolver may be nil, in which case
// the reported history reference id is trusted as is.
func NewHandler(logger *logrus.Logger, sink alert.Sink, resolver history.Resolver) Handler {
	return &handler{
		logger:   logger,
		sink:     sink,
		resolver: resolver,
	}
}

type report struct {
	historyReferenceID int64
	risk               int
	confidence         int
	name               string
	description        string
}

func (h *handler) HandleCallback(ctx context.Context, body []byte, requestURL string) error {
	if err := h.handle(ctx, body); err != nil {
		h.logger.WithError(err).WithField("url", requestURL).Debug("front-end scanner callback rejected")
		prometheus.FindingsTotal.WithLabelValues("rejected").Inc()
		return apierror.Wrap(apierror.URLNotFound, requestURL, err)
	}
	prometheus.FindingsTotal.WithLabelValues("accepted").Inc()
	return nil
}

func (h *handler) handle(ctx context.Context, body []byte) error {
	r, err := h.parse(body)
	if err != nil {
		return err
	}

	ref := &history.Reference{ID: r.historyReferenceID}
	if h.resolver != nil {
		ref, err = h.resolver.Resolve(ctx, r.historyReferenceID)
		if err != nil {
			return err
		}
		if ref == nil {
			return fmt.Errorf("%w: %d", history.ErrReferenceNotFound, r.historyReferenceID)
		}
	}

	a := alert.New(r.historyReferenceID, r.risk, r.confidence, r.name, r.description)
	a.URL = ref.URL
	if err := h.sink.AlertFound(ctx, a, *ref); err != nil {
		return fmt.Errorf("alert sink: %w", err)
	}
	return nil
}

func (h *handler) parse(body []byte) (*report, error) {
	p := h.parsers.Get()
	defer h.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid callback body: %w", err)
	}
	obj := v.Get("alert")
	if obj == nil || obj.Type() != fastjson.TypeObject {
		return nil, errMissingAlert
	}

	var r report
	id, err := intField(obj, "historyReferenceId")
	if err != nil {
		return nil, err
	}
	r.historyReferenceID = int64(id)
	if r.risk, err = intField(obj, "risk"); err != nil {
		return nil, err
	}
	if r.confidence, err = intField(obj, "confidence"); err != nil {
		return nil, err
	}
	if r.name, err = stringField(obj, "name"); err != nil {
		return nil, err
	}
	if r.description, err = stringField(obj, "description"); err != nil {
		return nil, err
	}
	return &r, nil
}

// intField accepts a JSON integer or a string holding one.
func intField(obj *fastjson.Value, key string) (int, error) {
	v := obj.Get(key)
	if v == nil || v.Type() == fastjson.TypeNull {
		return 0, fmt.Errorf("%w: %s", errFieldMissing, key)
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		n, err := v.Int()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", errFieldType, key, err)
		}
		return n, nil
	case fastjson.TypeString:
		n, err := strconv.Atoi(string(v.GetStringBytes()))
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", errFieldType, key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s", errFieldType, key)
	}
}

func stringField(obj *fastjson.Value, key string) (string, error) {
	v := obj.Get(key)
	if v == nil || v.Type() == fastjson.TypeNull {
		return "", fmt.Errorf("%w: %s", errFieldMissing, key)
	}
	b, err := v.StringBytes()
	if err != nil {
		return "", fmt.Errorf("%w: %s", errFieldType, key)
	}
	return string(b), nil
}
