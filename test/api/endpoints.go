/*
Copyright 2026 Nscale.

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

package api

import (
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Courier endpoints.
func (e *Endpoints) RegisterCourier() string {
	return "/api/v1/courier"
}

func (e *Endpoints) LoginCourier() string {
	return "/api/v1/courier/login"
}

func (e *Endpoints) DeleteCourier(id int) string {
	return "/api/v1/courier/" + url.PathEscape(strconv.Itoa(id))
}
