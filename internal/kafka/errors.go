package kafka

import (
	"errors"
)

var (
	errTopicIsExist = errors.New("topic already has a handler")
)
