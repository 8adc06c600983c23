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
	"fmt"

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"
)

//nolint:gochecknoglobals
var firstNames = []string{
	"alex", "maria", "ivan", "olga", "sam", "nina", "petr", "anna",
}

func generateRandomName(prefix string, length int) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(length))
}

// RandomLogin returns a login that is unique with high probability.
func RandomLogin() string {
	return generateRandomName("courier", 10)
}

func RandomPassword() string {
	return rand.String(12)
}

func RandomFirstName() string {
	return generateRandomName(firstNames[rand.Intn(len(firstNames))], 4)
}

// RandomCourier returns a courier with every field populated.
func RandomCourier() Courier {
	return NewCourier().Build()
}

// CourierPayloadBuilder builds courier payloads for testing.
type CourierPayloadBuilder struct {
	courier Courier
}

// NewCourier creates a new courier builder with random values for every field.
func NewCourier() *CourierPayloadBuilder {
	return &CourierPayloadBuilder{
		courier: Courier{
			Login:     RandomLogin(),
			Password:  RandomPassword(),
			FirstName: ptr.To(RandomFirstName()),
		},
	}
}

func (b *CourierPayloadBuilder) WithLogin(login string) *CourierPayloadBuilder {
	b.courier.Login = login
	return b
}

func (b *CourierPayloadBuilder) WithPassword(password string) *CourierPayloadBuilder {
	b.courier.Password = password
	return b
}

func (b *CourierPayloadBuilder) WithFirstName(firstName string) *CourierPayloadBuilder {
	b.courier.FirstName = ptr.To(firstName)
	return b
}

// WithoutLogin omits the login from the payload.
func (b *CourierPayloadBuilder) WithoutLogin() *CourierPayloadBuilder {
	b.courier.Login = ""
	return b
}

// WithoutPassword omits the password from the payload.
func (b *CourierPayloadBuilder) WithoutPassword() *CourierPayloadBuilder {
	b.courier.Password = ""
	return b
}

// WithoutFirstName leaves only the required fields.
func (b *CourierPayloadBuilder) WithoutFirstName() *CourierPayloadBuilder {
	b.courier.FirstName = nil
	return b
}

// Build returns the completed courier payload.
func (b *CourierPayloadBuilder) Build() Courier {
	courier := b.courier

	if courier.FirstName != nil {
		courier.FirstName = ptr.To(*courier.FirstName)
	}

	return courier
}
