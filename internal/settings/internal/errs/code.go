package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidPosition = ErrorCode{Code: 502002, Msg: "非法的挂件位置"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
