package validware

// DefaultErrorCode is the top-level envelope code used when none is
// configured.
const DefaultErrorCode = "VALIDATION_ERROR"

// Detail is one formatted entry in the error envelope.
type Detail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// ErrorBody carries the code and the per-field details.
type ErrorBody struct {
	Code    string   `json:"code"`
	Details []Detail `json:"details"`
}

// Envelope is the JSON body returned with HTTP 400 when request validation
// fails.
type Envelope struct {
	Error ErrorBody `json:"error"`
}

// NewEnvelope builds an envelope from already-formatted details.
func NewEnvelope(code string, details ...Detail) Envelope {
	if code == "" {
		code = DefaultErrorCode
	}
	if details == nil {
		details = []Detail{}
	}
	return Envelope{Error: ErrorBody{Code: code, Details: details}}
}

// Detail renders the issue into its envelope entry. A blank location or
// message degrades to a placeholder so a malformed issue still produces an
// entry instead of suppressing one.
func (it Issue) Detail() Detail {
	d := Detail{Field: it.Location.String(), Message: it.Message, Type: it.Type}
	if d.Field == "" {
		d.Field = "unknown"
	}
	if d.Message == "" {
		d.Message = "invalid value"
	}
	return d
}

// BuildEnvelope converts a validation failure into the envelope. When err
// carries Issues, each issue maps to one detail in input order. Any other
// error (an unrelated failure that reached the handler) becomes a single
// detail under the "request" field.
func BuildEnvelope(err error, code string) Envelope {
	if code == "" {
		code = DefaultErrorCode
	}
	iss, ok := AsIssues(err)
	if !ok {
		msg := "invalid request"
		if err != nil {
			msg = err.Error()
		}
		return NewEnvelope(code, Detail{Field: "request", Message: msg})
	}
	details := make([]Detail, 0, len(iss))
	for _, it := range iss {
		details = append(details, it.Detail())
	}
	return NewEnvelope(code, details...)
}

// SafeEnvelope is BuildEnvelope behind a recover guard. The error handler is
// the last line of defense for malformed input, so it must always produce an
// envelope; a panic degrades to a single generic detail.
func SafeEnvelope(err error, code string) (env Envelope) {
	if code == "" {
		code = DefaultErrorCode
	}
	defer func() {
		if r := recover(); r != nil {
			env = NewEnvelope(code, Detail{Field: "request", Message: "request validation failed"})
		}
	}()
	return BuildEnvelope(err, code)
}
