package terminal

import "errors"

// EnterRawMode disables every feature in RawModeFeatures, stopping at the
// first failure.
func EnterRawMode(d Driver) error {
	for _, f := range RawModeFeatures {
		if err := d.DisableFeature(f); err != nil {
			return err
		}
	}
	return nil
}

// ExitRawMode clears the screen and re-enables every raw-mode feature,
// homing the cursor. It keeps going after failures; the joined errors are
// returned only so they can be logged.
func ExitRawMode(d Driver) error {
	var errs []error

	d.ClearScreen()
	if err := d.Flush(); err != nil {
		errs = append(errs, err)
	}

	for _, f := range RawModeFeatures {
		if err := d.EnableFeature(f); err != nil {
			errs = append(errs, err)
		}
	}

	d.SetCursorPosition(Coord{})
	if err := d.Flush(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
