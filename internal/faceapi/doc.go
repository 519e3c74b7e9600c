// Package faceapi is a minimal client for the Azure AI Face detect operation.
//
// A Client sends one image per Detect call as an application/octet-stream
// body and maps the JSON response to model.DetectedFace values. The
// subscription key is attached by the client's transport, so it never
// appears on requests built elsewhere in the program.
//
// Every error returned by Detect wraps ErrRemoteCall. Responses with a
// non-2xx status are reported as *RemoteError, carrying the service's
// error code and message:
//
//	faces, err := client.Detect(ctx, model.FixedAttributeSet(), data)
//	var remoteErr *faceapi.RemoteError
//	if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusUnauthorized {
//	    // bad key
//	}
package faceapi
