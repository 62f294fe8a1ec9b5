// Package acapy is a typed client for the admin API of an Aries Cloud Agent
// Python (ACA-Py) instance.
//
// Each Client method sends exactly one request and never retries. Failures
// come back as *Error, whose Kind names the failing area:
//
//	conn, err := client.GetConnection(ctx, id)
//	switch {
//	case errors.Is(err, acapy.ErrConnection) && acapy.IsNotFound(err):
//		// unknown connection
//	case err != nil:
//		return err
//	}
//
// IsReady and IsAlive are probes: they report false instead of failing.
package acapy
