// Package notify delivers transient user notifications.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

type Kind int

const (
	Success Kind = iota
	Error
	Info
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

func Successf(n Notifier, title, format string, args ...interface{}) {
	n.Notify(Notification{Kind: Success, Title: title, Message: fmt.Sprintf(format, args...)})
}

func Errorf(n Notifier, title, format string, args ...interface{}) {
	n.Notify(Notification{Kind: Error, Title: title, Message: fmt.Sprintf(format, args...)})
}

func Infof(n Notifier, title, format string, args ...interface{}) {
	n.Notify(Notification{Kind: Info, Title: title, Message: fmt.Sprintf(format, args...)})
}

// Console prints notifications as coloured lines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(n Notification) {
	var paint *color.Color
	switch n.Kind {
	case Success:
		paint = color.New(color.FgGreen)
	case Error:
		paint = color.New(color.FgRed)
	default:
		paint = color.New(color.FgCyan)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if n.Message == "" {
		paint.Fprintln(c.out, n.Title)
		return
	}
	paint.Fprintf(c.out, "%s: ", n.Title)
	fmt.Fprintln(c.out, n.Message)
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.list = append(r.list, n)
	r.mu.Unlock()
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.list...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.list) == 0 {
		return Notification{}, false
	}
	return r.list[len(r.list)-1], true
}
