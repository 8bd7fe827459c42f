package errs

import "fmt"

type Error interface {
	Error() string
	Code() int32
	Msg() string
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code int32
	msg  string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), msg)
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	Success            = New(0, "success")
	ServerError        = New(1_0001, "internal server error")
	ParamError         = New(1_0002, "param error")
	Unauthorized       = New(1_0003, "token is missing or invalid")
	TooManyRequest     = New(1_0004, "too many request")
	RequestBlocked     = New(1_0006, "request is blocked")
	PolicyViolation    = New(1_0008, "cannot perform that function")
	ServiceUnavailable = New(1_0009, "upstream service unavailable")
	LoginFailed        = New(1_0010, "could not verify")

	UserNameDuplicated = New(2_0003, "user name duplicated")
	UserNotFound       = New(2_0004, "no user found")

	TodoNotFound = New(3_0001, "no todo found")

	ConversationNotFound = New(4_0001, "no conversation found")
	EmotionNotFound      = New(4_0002, "no emotion found")

	SongNotFound   = New(5_0001, "no song found")
	SongDuplicated = New(5_0002, "song name duplicated")
)
