package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorInvalidArgument struct {
	Reason string
}

func (e ErrorInvalidArgument) Error() string {
	if e.Reason == "" {
		return "Invalid Argument"
	}
	return "Invalid Argument: " + e.Reason
}

func NewErrorInvalidArgument(reason string) ErrorInvalidArgument {
	return ErrorInvalidArgument{Reason: reason}
}
