// Copyright 2023 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/grenade/taskcluster-queue/config"
)

func main() {
	var configPath string
	var printVersion bool
	flag.StringVar(&configPath, "config", "", "Configuration file path. Supports JSON, TOML, YAML and HCL formatted configs.")
	flag.BoolVar(&printVersion, "version", false, "Show version")

	flag.Parse()

	if printVersion {
		fmt.Println("Version:", CreateVersionString())
		fmt.Println("BuildNumber:", BuildNumber)
		os.Exit(0)
	}

	l := log.New(log.Ctx{})

	if err := HandleConfigFile(configPath); err != nil {
		l.Fatalf("error loading configuration: %s", err)
	}

	l.Fatal(RunServer(config.Config))
}

// HandleConfigFile wires env bindings, defaults and validators into the
// package-level config.Config, then loads filePath if given.
func HandleConfigFile(filePath string) error {
	return config.FromConfigFile(filePath, []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingMongoURL, Value: SettingMongoURLDefault},
		{Key: SettingKafkaTopic, Value: SettingKafkaTopicDefault},
		{Key: SettingRegionCacheTTL, Value: SettingRegionCacheTTLDefault},
	}, ValidateAws, ValidateHttps)
}
