package sim

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteBatchReport prints a line for every player who dropped out early,
// followed by a summary of the batch.
func WriteBatchReport(w io.Writer, res BatchResult) error {
	printer := message.NewPrinter(language.English)

	for _, o := range res.Outcomes {
		if !o.Terminated {
			continue
		}
		if _, err := printer.Fprintf(w, "The player %s has almost worked themselves to death. They are out of the game after lasting %d days.\n",
			o.Name, o.SurvivedDays); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	s := res.Stats()
	if _, err := printer.Fprintf(w, "%d of %d players lasted all %d days. Average survival: %.1f days (min %d, max %d).\n",
		s.Survivors, s.Players, res.MaxDays, s.MeanDays, s.MinDays, s.MaxDays); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
