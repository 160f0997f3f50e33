package config

// GetDefaultConfig returns the built-in configuration: the six application
// components of the deployment suite, each bound to its namespace, manifest
// set, ownership prefixes, and workloads.
func GetDefaultConfig() Config {
	return Config{
		BaseDir:             "/opt/minikube",
		Principal:           "muser",
		PollIntervalSeconds: 10,
		PollTimeoutSeconds:  300,
		Targets: map[string]Target{
			"dashboard": {
				Namespace:     "kubernetes-dashboard",
				Manifests:     []string{"dashboard.yaml"},
				OwnedPrefixes: []string{"kubernetes-dashboard", "dashboard-metrics-scraper"},
				Workloads: []Workload{
					{Name: "dashboard", Selector: "k8s-app=kubernetes-dashboard"},
				},
				ArtifactSource: "https://github.com/TechSavvyRC/dashboard.git",
			},
			"database": {
				Namespace: "database",
				// mysql carries the schema; phpmyadmin depends on it.
				Manifests:     []string{"mysql.yaml", "phpmyadmin.yaml"},
				OwnedPrefixes: []string{"mysql", "phpmyadmin"},
				Workloads: []Workload{
					{Name: "mysql", Selector: "app=mysql"},
					{Name: "phpmyadmin", Selector: "app=phpmyadmin"},
				},
				RequiredFiles:  []string{"debug-pod.yaml", "init-db.sql", "mysql.yaml", "phpmyadmin.yaml"},
				ArtifactSource: "https://github.com/TechSavvyRC/database.git",
			},
			"streaming": {
				Namespace:     "streaming",
				Manifests:     []string{"kafka.yaml"},
				OwnedPrefixes: []string{"kafka", "redpanda"},
				Workloads: []Workload{
					{Name: "kafka", Selector: "app=kafka"},
				},
				ArtifactSource: "https://github.com/TechSavvyRC/streaming.git",
			},
			"application": {
				Namespace:     "application",
				Manifests:     []string{"ecom-app.yaml"},
				OwnedPrefixes: []string{"ecom"},
				Workloads: []Workload{
					{Name: "ecom-app", Selector: "app=ecom-app"},
				},
				ArtifactSource: "https://github.com/TechSavvyRC/application.git",
			},
			"backup": {
				Namespace:     "velero",
				Manifests:     []string{"velero.yaml"},
				OwnedPrefixes: []string{"velero"},
				Workloads: []Workload{
					{Name: "velero", Selector: "deploy=velero"},
				},
				ArtifactSource: "https://github.com/TechSavvyRC/backup.git",
			},
			"bridge": {
				Namespace:     "bridge",
				Manifests:     []string{"mysql-kafka-bridge.yaml"},
				OwnedPrefixes: []string{"mysql-kafka-bridge"},
				Workloads: []Workload{
					{Name: "mysql-kafka-bridge", Selector: "app=mysql-kafka-bridge"},
				},
				ArtifactSource: "https://github.com/TechSavvyRC/bridge.git",
			},
		},
	}
}
