package schema

// Container and case entity types referenced by the entity settings catalog.
const (
	EntityTypeContainerNote    = "Note"
	EntityTypeContainerOpinion = "Opinion"
	EntityTypeContainerReport  = "Report"
	EntityTypeContainerCase    = "Case"
	EntityTypeCaseTask         = "Case-Task"
)

// RelationRelatedTo is the generic related-to core relationship.
const RelationRelatedTo = "related-to"

var stixDomainObjects = []string{
	AbstractStixDomainObject,
	"Attack-Pattern",
	"Campaign",
	EntityTypeContainerNote,
	"Observed-Data",
	EntityTypeContainerOpinion,
	EntityTypeContainerReport,
	"Grouping",
	EntityTypeContainerCase,
	"Case-Incident",
	"Case-Rfi",
	"Case-Rft",
	"Feedback",
	EntityTypeCaseTask,
	"Case-Template",
	"Course-Of-Action",
	"Individual",
	"Organization",
	"Sector",
	"System",
	"Indicator",
	"Infrastructure",
	"Intrusion-Set",
	"City",
	"Country",
	"Region",
	"Position",
	"Administrative-Area",
	"Malware",
	"Malware-Analysis",
	"Threat-Actor",
	"Threat-Actor-Group",
	"Threat-Actor-Individual",
	"Tool",
	"Vulnerability",
	"Incident",
	"Channel",
	"Narrative",
	"Language",
	"Event",
	"Data-Component",
	"Data-Source",
}

var stixCoreRelationships = []string{
	AbstractStixCoreRelationship,
	"delivers",
	"targets",
	"uses",
	"attributed-to",
	"compromises",
	"originates-from",
	"investigates",
	"mitigates",
	"located-at",
	"indicates",
	"based-on",
	"communicates-with",
	"consists-of",
	"controls",
	"has",
	"hosts",
	"owns",
	"authored-by",
	"beacons-to",
	"exfiltrates-to",
	"downloads",
	"drops",
	"exploits",
	"variant-of",
	"characterizes",
	"analysis-of",
	"static-analysis-of",
	"dynamic-analysis-of",
	"impersonates",
	"remediates",
	RelationRelatedTo,
	"derived-from",
	"duplicate-of",
	"part-of",
	"cooperates-with",
	"participates-in",
	"subtechnique-of",
	"revoked-by",
	"belongs-to",
	"resolves-to",
	"detects",
	"employed-by",
	"citizen-of",
	"national-of",
	"known-as",
	"reports-to",
	"supports",
}

var stixCyberObservables = []string{
	AbstractStixCyberObservable,
	"Artifact",
	"Autonomous-System",
	"Directory",
	"Domain-Name",
	"Email-Addr",
	"Email-Message",
	"Email-Mime-Part-Type",
	"StixFile",
	"X509-Certificate",
	"IPv4-Addr",
	"IPv6-Addr",
	"Mac-Addr",
	"Mutex",
	"Network-Traffic",
	"Process",
	"Software",
	"Url",
	"User-Account",
	"Windows-Registry-Key",
	"Windows-Registry-Value-Type",
	"Cryptographic-Key",
	"Cryptocurrency-Wallet",
	"Hostname",
	"Text",
	"User-Agent",
	"Bank-Account",
	"Phone-Number",
	"Payment-Card",
	"Media-Content",
	"Credential",
	"Tracking-Number",
}

// registry maps every known type name to its category. It is built once at
// package initialization and never written afterwards.
var registry = buildRegistry()

func buildRegistry() map[string]Category {
	r := make(map[string]Category,
		len(stixDomainObjects)+len(stixCoreRelationships)+len(stixCyberObservables)+1)

	for _, t := range stixDomainObjects {
		r[t] = CategoryDomainObject
	}

	for _, t := range stixCoreRelationships {
		r[t] = CategoryCoreRelationship
	}

	for _, t := range stixCyberObservables {
		r[t] = CategoryCyberObservable
	}

	r[StixSightingRelationship] = CategorySightingRelationship

	return r
}
