// Package matscholar is a client for the MatScholar materials-science
// text-mining REST API: semantic materials search, nearest-neighbor word
// embeddings, co-mention lookup, text preprocessing and embedding retrieval.
//
// Every response from the service arrives in a uniform envelope; the client
// unwraps it into typed results and returns a single *Error (tagged with a
// Kind) for every failure mode. Warnings embedded in valid responses are
// non-fatal and go to the configured warning handler (logrus by default).
//
//	c, err := matscholar.New(os.Getenv("MATERIALS_SCHOLAR_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.MaterialsSearch(ctx, []string{"thermoelectric"}, matscholar.WithTopK(5))
package matscholar
