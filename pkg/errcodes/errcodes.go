package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Dataset loading.
	DatasetUnreadable     failure.ErrorCode = "DatasetUnreadable"
	DatasetSchemaMismatch failure.ErrorCode = "DatasetSchemaMismatch"
	DatasetInvalidRecord  failure.ErrorCode = "DatasetInvalidRecord"
	DatasetEmpty          failure.ErrorCode = "DatasetEmpty"

	// Callbacks.
	UnknownCallbackOutput   failure.ErrorCode = "UnknownCallbackOutput"
	DuplicateCallbackOutput failure.ErrorCode = "DuplicateCallbackOutput"
	InvalidPayloadRange     failure.ErrorCode = "InvalidPayloadRange"
	ChartRenderFailed       failure.ErrorCode = "ChartRenderFailed"
)
