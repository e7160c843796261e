package checks

func NewResult(phaseID string, item Item, status Status, message string) Result {
	return Result{
		PhaseID:     phaseID,
		Description: item.Description,
		Path:        item.Path,
		Pattern:     item.Pattern,
		Status:      status,
		Message:     message,
	}
}

func PassResult(phaseID string, item Item, message string) Result {
	return NewResult(phaseID, item, StatusPass, message)
}

func FailResult(phaseID string, item Item, message string) Result {
	return NewResult(phaseID, item, StatusFail, message)
}

func ErrorResult(phaseID string, item Item, message string) Result {
	return NewResult(phaseID, item, StatusError, message)
}
