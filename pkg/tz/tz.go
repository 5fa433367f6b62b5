package tz

import "time"

// SaoPaulo is the America/Sao_Paulo location. "Today" for the dashboard and
// the stale-event cutoff is computed against this timezone, not the server's.
var SaoPaulo *time.Location

func init() {
	var err error
	SaoPaulo, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic("tz: load America/Sao_Paulo: " + err.Error())
	}
}
