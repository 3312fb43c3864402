// Package health provides HTTP handlers for the daemon's health probes.
//
// [LivenessHandler] always responds OK while the process runs.
// [ReadinessHandler] executes a set of named [Checks] in parallel and
// responds 503 when any of them fails. [Routes] mounts both on a chi router:
//
//	srv := &http.Server{
//	    Addr: ":8080",
//	    Handler: health.Routes(health.Checks{
//	        "scheduler": sched.Healthcheck(),
//	    }, health.WithLogger(log)),
//	}
//
// Handlers respond with plain text by default. Request JSON with
// Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "scheduler": {"status": "unhealthy", "error": "scheduler: healthcheck failed: last run failed: sewing"}
//	  }
//	}
package health
