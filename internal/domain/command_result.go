package domain

import "fmt"

type ResultKind string

const (
	ResultRun       ResultKind = "run_result"
	ResultString    ResultKind = "return_string"
	ResultException ResultKind = "exception"
	ResultPrint     ResultKind = "print_result"
)

// CommandResult — ответ устройства на одну команду.
type CommandResult struct {
	Kind    ResultKind
	Command string
	Seq     int
	OK      bool
	Code    int
	Message string
}

func RunResult(ok bool) CommandResult {
	return CommandResult{Kind: ResultRun, OK: ok}
}

func StringResult(s string) CommandResult {
	return CommandResult{Kind: ResultString, OK: true, Message: s}
}

func ExceptionResult(code int, msg string) CommandResult {
	return CommandResult{Kind: ResultException, Code: code, Message: msg}
}

func PrintResult(code int, msg string) CommandResult {
	return CommandResult{Kind: ResultPrint, OK: code == 0, Code: code, Message: msg}
}

// Failed сообщает, что устройство не выполнило команду.
func (r CommandResult) Failed() bool {
	switch r.Kind {
	case ResultException:
		return true
	case ResultRun:
		return !r.OK
	case ResultPrint:
		return r.Code != 0
	default:
		return false
	}
}

func (r CommandResult) String() string {
	switch r.Kind {
	case ResultRun:
		return fmt.Sprintf("%s #%d: run result %t", r.Command, r.Seq, r.OK)
	case ResultString:
		return fmt.Sprintf("%s #%d: returned %q", r.Command, r.Seq, r.Message)
	default:
		return fmt.Sprintf("%s #%d: %s %d %s", r.Command, r.Seq, r.Kind, r.Code, r.Message)
	}
}
