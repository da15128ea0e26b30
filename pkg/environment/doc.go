// Package environment names the deployment environments qrscan knows about and
// normalizes the short aliases accepted in APP_ENV ("dev", "stage", "prod").
package environment
