package dashboard

import "time"

func SetNowFunc(a *Analyzer, now func() time.Time) {
	a.nowFunc = now
}
