package attack

import "github.com/pkg/errors"

var ErrUnknownComboTable = errors.New("attack: unknown combo table name")

func errUnknownComboTable(name string) error {
	return errors.Wrapf(ErrUnknownComboTable, "name=%q", name)
}
