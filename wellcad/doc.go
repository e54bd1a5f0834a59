// Package wellcad drives the WellCAD borehole application through its
// automation interface.
//
// Every operation forwards its arguments positionally to the host member of
// the same (or a documented) name and wraps returned objects in the matching
// facade. Processing operations take a Process value; its zero value runs the
// process with the host defaults and without prompting, so unattended jobs
// never block on a dialog:
//
//	app, err := wellcad.Connect("")
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	bh, err := app.OpenBorehole(`C:\data\Well1.wcl`)
//	if err != nil {
//		return err
//	}
//	_, err = bh.FilterLogMedian("GR", 5, wellcad.FilterOptions{})
//
// Errors raised by the host are returned unchanged.
package wellcad
