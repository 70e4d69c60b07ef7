/*
   Copyright 2026 The chainerr Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package adapter converts chained errors into the portable view types of
// the apis package. It is the glue between domain error containers and the
// transport layers (httpx, grpcx, structured logging).
package adapter

import (
	"github.com/drmason13/chainerr"
	"github.com/drmason13/chainerr/apis"
	"github.com/drmason13/chainerr/kind"
	"github.com/drmason13/chainerr/trail"
)

// Describe converts any chained error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the logical kind/trail pair plus the concrete
// transport statuses (HTTP and gRPC). The message is the rendered chain,
// outermost layer first.
func Describe(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	k, _ := kind.Of(err)
	return apis.ErrorDescriptor{
		Kind:       string(k),
		Trail:      string(trail.Of(err)),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    chainerr.Render(err),
	}
}

// View converts a chained error into a public ErrorView.
//
// The view's message is the outermost link's own message, not the rendered
// chain, so that transports do not leak lower-layer wording by default.
// Details are collected from every link that implements apis.DetailedError,
// outermost layer first.
//
// No automatic redaction or filtering is performed; it is up to the caller
// or API layer to decide whether to drop sensitive fields.
func View(err error, st apis.Status) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	k, _ := kind.Of(err)
	v := apis.ErrorView{
		Kind:    string(k),
		Trail:   string(trail.Of(err)),
		Message: err.Error(),
	}
	v.Details = Details(err)
	return v
}

// Details collects the structured details of every link in the chain,
// outermost layer first. Links without details contribute nothing.
func Details(err error) []apis.Detail {
	var out []apis.Detail
	for _, link := range chainerr.Links(err) {
		if de, ok := link.(apis.DetailedError); ok {
			if ds := de.ErrorDetails(); len(ds) > 0 {
				out = append(out, ds...)
			}
		}
	}
	return out
}
