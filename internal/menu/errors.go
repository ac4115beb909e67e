package menu

import "errors"

var (
	// ErrInvalidSessionArgs is returned when a session is built without a
	// menu, surface or viewer.
	ErrInvalidSessionArgs = errors.New("menu: invalid session arguments")
	// ErrInvalidPageNumber is returned when opening a page outside [1, N].
	ErrInvalidPageNumber = errors.New("menu: invalid page number")
	// ErrNoActiveSession is returned when closing a menu the viewer does not
	// have open.
	ErrNoActiveSession = errors.New("menu: no active session")
	ErrInvalidRows     = errors.New("menu: invalid row count")
	ErrMenuOpened      = errors.New("menu: already opened")
	ErrSlotOutOfRange  = errors.New("menu: slot out of range")
	ErrDuplicateMenu   = errors.New("menu: duplicate menu id")
	ErrUnknownMenu     = errors.New("menu: unknown menu id")
)
