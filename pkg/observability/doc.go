/*
Package observability turns navigator lifecycle hooks into logs and metrics.

Metrics counts commands per kind and outcome, directory transitions and
failures per error code on a private prometheus registry. The registry can
be exported to a node-exporter textfile when the session ends. LoggingHooks
writes one structured record per event, and ChainHooks fans a single event
out to several hook sets.
*/
package observability
