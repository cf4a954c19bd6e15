package utils

import (
	"fmt"
	"runtime/debug"
	"time"
)

func HandlePanic() {
	if r := recover(); r != nil {
		code := fmt.Sprintf("777-%d", time.Now().Unix()%1000)
		stack := string(debug.Stack())
		Fatal("Application crashed", "code", code, "reason", r, "stack", stack)
	}
}

func ReportError(err error, file, shortCode string) {
	if err == nil {
		return
	}
	Error("Handled error", "code", "888-"+shortCode, "file", file, "err", err)
}
