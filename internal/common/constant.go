package common

// RequestIDHeaderName is the gRPC metadata key and HTTP header used to carry
// a caller-supplied request id.
const RequestIDHeaderName = "x-request-id"

// Default institutional email suffixes.
const (
	DefaultTeacherDomain = "@kongu.ac.in"
	DefaultStudentDomain = "@kongu.edu"
)
