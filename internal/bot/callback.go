package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback actions routed through inline keyboard buttons. Telegram caps
// callback data at 64 bytes, so the encoding stays short:
// "<action>:<sessionID>[:<index>:<quantity>]".
type callbackAction string

const (
	actionQuantity callbackAction = "qty"
	actionVote     callbackAction = "vote"
	actionReset    callbackAction = "reset"
	actionOrder    callbackAction = "order"
	actionClose    callbackAction = "close"
	actionNoop     callbackAction = "noop"
)

var errBadCallback = errors.New("malformed callback data")

type callback struct {
	Action    callbackAction
	SessionID string
	ItemIndex int
	Quantity  int
}

func quantityCallback(sessionID string, itemIndex, quantity int) string {
	return fmt.Sprintf("%s:%s:%d:%d", actionQuantity, sessionID, itemIndex, quantity)
}

func sessionCallback(action callbackAction, sessionID string) string {
	return fmt.Sprintf("%s:%s", action, sessionID)
}

func parseCallback(data string) (callback, error) {
	parts := strings.Split(data, ":")

	switch callbackAction(parts[0]) {
	case actionNoop:
		return callback{Action: actionNoop}, nil

	case actionVote, actionReset, actionOrder, actionClose:
		if len(parts) != 2 || parts[1] == "" {
			return callback{}, errBadCallback
		}
		return callback{Action: callbackAction(parts[0]), SessionID: parts[1]}, nil

	case actionQuantity:
		if len(parts) != 4 || parts[1] == "" {
			return callback{}, errBadCallback
		}
		idx, err := strconv.Atoi(parts[2])
		if err != nil {
			return callback{}, errBadCallback
		}
		qty, err := strconv.Atoi(parts[3])
		if err != nil {
			return callback{}, errBadCallback
		}
		return callback{
			Action:    actionQuantity,
			SessionID: parts[1],
			ItemIndex: idx,
			Quantity:  qty,
		}, nil
	}

	return callback{}, errBadCallback
}
