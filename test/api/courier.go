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

// Courier is the registration payload.  Empty login and password are omitted
// from the body so the service sees a missing field.
type Courier struct {
	Login     string  `json:"login,omitempty"`
	Password  string  `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
}

// Credentials returns the login payload for the courier.
func (c Courier) Credentials() CourierCredentials {
	return CourierCredentials{
		Login:    c.Login,
		Password: c.Password,
	}
}

// CourierCredentials is the login payload.
type CourierCredentials struct {
	Login    string `json:"login,omitempty"`
	Password string `json:"password,omitempty"`
}

// CreateResult is returned on successful registration or deletion.
type CreateResult struct {
	OK bool `json:"ok"`
}

// LoginResult is returned on successful login.
type LoginResult struct {
	ID int `json:"id"`
}

// ErrorResult is returned with 4xx and 5xx status codes.
type ErrorResult struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
