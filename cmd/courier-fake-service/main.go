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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/courier/test/fake"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var listenAddress string

	pflag.StringVar(&listenAddress, "listen-address", ":8080", "Address the fake courier service listens on.")

	zapOptions := zap.Options{}
	zapOptions.BindFlags(flag.CommandLine)

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")
	logger.Info("service starting", "application", "courier-fake-service", "listenAddress", listenAddress)

	ctx := signals.SetupSignalHandler()

	server := &http.Server{
		Addr:              listenAddress,
		Handler:           fake.New(log.Log.WithName("courier")).Handler(),
		ReadHeaderTimeout: time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown failed")
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println(err)
		os.Exit(1)
	}
}
