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
	"fmt"
	"os"

	"github.com/grenade/taskcluster-queue/config"
)

const (
	SettingHttps            = "https"
	SettingHttpsCertificate = SettingHttps + ".certificate"
	SettingHttpsKey         = SettingHttps + ".key"

	SettingListen        = "listen"
	SettingListenDefault = ":8080"

	SettingsMongo          = "mongo"
	SettingMongoURL        = SettingsMongo + ".url"
	SettingMongoURLDefault = "mongodb://localhost:27017"

	SettingsAws              = "aws"
	SettingAwsRegion         = SettingsAws + ".region"
	SettingAwsPublicBucket   = SettingsAws + ".public_bucket"
	SettingAwsPrivateBucket  = SettingsAws + ".private_bucket"
	SettingAwsCloudFrontHost = SettingsAws + ".cloudfront_host"
	SettingAwsSameRegionHost = SettingsAws + ".same_region_host"

	SettingsAzure                = "azure"
	SettingAzureContainer        = SettingsAzure + ".container"
	SettingAzureConnectionString = SettingsAzure + ".connection_string"

	SettingsKafka            = "kafka"
	SettingKafkaBrokers      = SettingsKafka + ".brokers"
	SettingKafkaTopic        = SettingsKafka + ".topic"
	SettingKafkaTopicDefault = "artifacts.artifactCreated"

	SettingsRedis                = "redis"
	SettingRedisURL              = SettingsRedis + ".url"
	SettingRegionCacheTTL        = "region.cache_ttl"
	SettingRegionCacheTTLDefault = "5m"

	SettingRegionTable = "region.table"

	SettingCloudMirrorHost = "cloud_mirror_host"
)

// ValidateHttps validates configuration of SettingHttps section if provided.
func ValidateHttps(c config.Reader) error {
	if c.IsSet(SettingHttps) {
		required := []string{SettingHttpsCertificate, SettingHttpsKey}
		for _, key := range required {
			if !c.IsSet(key) {
				return MissingOptionError(key)
			}

			value := c.GetString(key)
			if value == "" {
				return MissingOptionError(key)
			}

			if _, err := os.Stat(value); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateAws requires a region, the cloudfront host and at least the
// private bucket whenever any AWS setting is present; the public bucket
// alone would leave
// createArtifact unable to mint put URLs for private names.
func ValidateAws(c config.Reader) error {
	if !c.IsSet(SettingsAws) {
		return nil
	}
	required := []string{SettingAwsRegion, SettingAwsPrivateBucket, SettingAwsCloudFrontHost}
	for _, key := range required {
		if c.GetString(key) == "" {
			return MissingOptionError(key)
		}
	}
	return nil
}

// MissingOptionError reports a required option absent from the loaded
// configuration.
func MissingOptionError(option string) error {
	return fmt.Errorf("required option: '%s'", option)
}
