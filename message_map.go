package web_serializers

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	severityError   = "err"
	severityWarning = "warn"
	severityInfo    = "info"
)

// MessageMap is a map intended to be used for carrying messages
// around, for the purpose of error handling.  Messages are also
// logged through the process's global zap logger as they are added.
// Methods on MessageMap always expect the MessageMap to already
// contain the keys "err", "warn", and "info", each holding a slice
// of strings, and "input", holding a map of input names to messages.
// Use NewMessageMap() to set up an empty MessageMap value.
type MessageMap map[string]interface{}

// NewMessageMap returns a MessageMap that is properly initialized.
func NewMessageMap() MessageMap {
	return MessageMap{
		severityError:   []string{},
		severityWarning: []string{},
		severityInfo:    []string{},
		"input":         map[string]string{},
	}
}

func (mm MessageMap) log(severity, message string) {
	logger := zap.S()
	switch severity {
	case severityError:
		logger.Error(message)
	case severityWarning:
		logger.Warn(message)
	default:
		logger.Info(message)
	}
}

func (mm MessageMap) joinMessages(messages ...interface{}) string {
	response := ""
	for _, message := range messages {
		if response != "" {
			response += " "
		}
		switch src := message.(type) {
		case fmt.Stringer:
			response += src.String()
		case error:
			response += src.Error()
		case string:
			response += src
		default:
			response += fmt.Sprint(src)
		}
	}
	return response
}

func (mm MessageMap) addMessage(severity string, messages ...interface{}) {
	message := mm.joinMessages(messages...)
	mm.log(severity, message)
	mm[severity] = append(mm[severity].([]string), message)
}

// AddErrorMessage adds an error message to the message map.
func (mm MessageMap) AddErrorMessage(messages ...interface{}) {
	mm.addMessage(severityError, messages...)
}

// Errors returns a slice of all the error messages that have been
// added to this message map.
func (mm MessageMap) Errors() []string {
	return mm[severityError].([]string)
}

// AddWarningMessage adds a warning message to the message map.
func (mm MessageMap) AddWarningMessage(messages ...interface{}) {
	mm.addMessage(severityWarning, messages...)
}

// Warnings returns a slice of all warning messages that have been
// added to this message map.
func (mm MessageMap) Warnings() []string {
	return mm[severityWarning].([]string)
}

// AddInfoMessage adds an info message to this message map.
func (mm MessageMap) AddInfoMessage(messages ...interface{}) {
	mm.addMessage(severityInfo, messages...)
}

// Infos returns a slice of all info messages that have been added to
// this message map.
func (mm MessageMap) Infos() []string {
	return mm[severityInfo].([]string)
}

// NumErrors is sugar for len(MessageMap.Errors())
func (mm MessageMap) NumErrors() int {
	return len(mm.Errors())
}

// NumWarnings is sugar for len(MessageMap.Warnings())
func (mm MessageMap) NumWarnings() int {
	return len(mm.Warnings())
}

// NumInfos is sugar for len(MessageMap.Infos())
func (mm MessageMap) NumInfos() int {
	return len(mm.Infos())
}

// SetInputMessage adds an error message for a specific input name.
func (mm MessageMap) SetInputMessage(input string, messages ...interface{}) {
	inputErrs := mm.InputMessages()
	inputErrs[input] = mm.joinMessages(messages...)
}

// InputMessages returns the map of input names to their error
// messages.
func (mm MessageMap) InputMessages() map[string]string {
	return mm["input"].(map[string]string)
}
