// Package observability defines the hook through which channel operations are
// reported to metrics, audit or debugging code.
//
// Every send, receive, close and release on an mpsc or oneshot channel can be
// reported to an Observer as an OperationContext. The hook is optional and
// independent of logging and tracing: with no observer configured operations
// go to a NoOpObserver. Multi fans one operation out to several observers.
//
// # Usage
//
//	type slowSendObserver struct{ log logger.Logger }
//
//	func (o slowSendObserver) ObserveOperation(op observability.OperationContext) {
//	    if op.Operation == observability.OperationSend && op.Duration > time.Second {
//	        o.log.Info("slow send", op.Error, map[string]interface{}{
//	            "uuid":     op.Resource,
//	            "duration": op.Duration,
//	        })
//	    }
//	}
//
//	tx, rx := mpsc.Channel[Job](16, instrument.WithObserver(slowSendObserver{log}))
//
// Package metrics ships a Prometheus-backed implementation, and package
// mocks a gomock Observer for tests.
//
// # Thread Safety
//
// Observers are called concurrently from every goroutine using a channel.
package observability
