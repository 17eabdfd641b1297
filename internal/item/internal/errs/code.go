package errs

var (
	SystemError  = ErrorCode{Code: 503001, Msg: "系统错误"}
	ItemNotFound = ErrorCode{Code: 503002, Msg: "条目不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
