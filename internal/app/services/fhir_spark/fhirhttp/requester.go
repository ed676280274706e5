package fhirhttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"questionnaire-service/internal/app/services/shared/metrics"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrorWrapper builds the CustomError returned for a failed call on resource.
type ErrorWrapper func(err error, resource string) *exceptions.CustomError

// Requester sends FHIR REST calls and turns OperationOutcome bodies into
// CustomErrors. It is shared by every resource client.
type Requester struct {
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewRequester(httpClient *http.Client, logger *zap.Logger) *Requester {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Requester{HTTPClient: httpClient, Log: logger}
}

// Call describes a single request. Body is marshalled to JSON unless it is
// already a json.RawMessage. Result, when not nil, receives the decoded body.
type Call struct {
	Method   string
	Url      string
	Resource string
	Body     any
	Result   any
	Wrap     ErrorWrapper
}

func (r *Requester) Do(ctx context.Context, call Call) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	wrap := call.Wrap
	if wrap == nil {
		wrap = exceptions.ErrGetFHIRResource
	}

	var body io.Reader
	if call.Body != nil {
		payload, err := encodeBody(call.Body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, call.Url, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderRequestID, requestID)
	}

	start := time.Now()
	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		metrics.ObserveFHIRRequest(call.Resource, call.Method, "error", start)
		r.Log.Error("fhirRequester.Do error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, call.Method),
			zap.String(constvars.LoggingURLKey, call.Url),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	metrics.ObserveFHIRRequest(call.Resource, call.Method, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		fhirErr := decodeOutcome(resp)
		r.Log.Error("fhirRequester.Do FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, call.Resource),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(fhirErr),
		)
		if resp.StatusCode == constvars.StatusNotFound {
			return exceptions.ErrFHIRResourceNotFound(fhirErr, call.Resource)
		}
		return wrap(fhirErr, call.Resource)
	}

	if call.Result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(call.Result); err != nil && !errors.Is(err, io.EOF) {
		return exceptions.ErrDecodeResponse(err, call.Resource)
	}
	return nil
}

func encodeBody(body any) ([]byte, error) {
	switch value := body.(type) {
	case json.RawMessage:
		return value, nil
	case []byte:
		return value, nil
	default:
		return json.Marshal(body)
	}
}

// decodeOutcome returns the first OperationOutcome diagnostic, or the status
// line when the body carries none.
func decodeOutcome(resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		issue := outcome.Issue[0]
		if issue.Diagnostics != "" {
			return errors.New(issue.Diagnostics)
		}
		return fmt.Errorf("%s: %s", issue.Severity, issue.Code)
	}
	return fmt.Errorf("unexpected status %s", resp.Status)
}
