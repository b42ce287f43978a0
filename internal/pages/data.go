package pages

import "github.com/ziadkadry99/showcase/internal/catalog"

const (
	docsDir      = "docs"
	workflowsDir = "workflows"
)

func docConfigs() []catalog.Config {
	md := catalog.FormatMarkdown
	return []catalog.Config{
		{ID: "main-guide", Title: "N8N AI Platform Replication Guide", Filename: "N8N_AI_Platform_Replication_Guide.md", Dir: docsDir, Format: md, Category: "Main Guide",
			Description: "Comprehensive main guide covering the complete N8N AI platform replication system"},
		{ID: "final-report", Title: "Final Report", Filename: "final_report.md", Dir: docsDir, Format: md, Category: "Reports",
			Description: "Complete project summary with findings, analysis, and conclusions"},
		{ID: "workflow-architecture", Title: "Workflow Architecture", Filename: "workflow_architecture.md", Dir: docsDir, Format: md, Category: "Architecture",
			Description: "Detailed architecture overview and workflow design patterns"},
		{ID: "master-workflow", Title: "Master Workflow Architecture", Filename: "master_workflow_architecture.md", Dir: docsDir, Format: md, Category: "Architecture",
			Description: "Architecture specification for the master orchestrator workflow"},
		{ID: "implementation-roadmap", Title: "Implementation Roadmap", Filename: "implementation_roadmap.md", Dir: docsDir, Format: md, Category: "Implementation",
			Description: "Phased implementation plan with priorities and timelines"},
		{ID: "capability-mapping", Title: "Capability Mapping", Filename: "capability_mapping.md", Dir: docsDir, Format: md, Category: "Analysis",
			Description: "Mapping of AI platform capabilities to N8N workflow components"},
		{ID: "feature-mapping", Title: "Feature Mapping", Filename: "feature_mapping.md", Dir: docsDir, Format: md, Category: "Analysis",
			Description: "Detailed feature comparison and implementation mapping"},
		{ID: "feasibility-assessment", Title: "Feasibility Assessment", Filename: "feasibility_assessment.md", Dir: docsDir, Format: md, Category: "Assessment",
			Description: "Technical feasibility analysis for AI platform replication"},
		{ID: "limitations-workarounds", Title: "Limitations and Workarounds", Filename: "limitations_and_workarounds.md", Dir: docsDir, Format: md, Category: "Technical",
			Description: "Known limitations and recommended workaround strategies"},
		{ID: "external-services", Title: "External Services", Filename: "external_services.md", Dir: docsDir, Format: md, Category: "Technical",
			Description: "Required external APIs, services, and integration requirements"},
		{ID: "n8n-capabilities", Title: "N8N Capabilities Analysis", Filename: "n8n_capabilities_analysis.md", Dir: docsDir, Format: md, Category: "Analysis",
			Description: "Comprehensive analysis of N8N platform capabilities and features"},
		{ID: "ai-platform-features", Title: "AI Platform Features Summary", Filename: "ai_platform_features_summary.md", Dir: docsDir, Format: md, Category: "Analysis",
			Description: "Summary of analyzed AI platform features and capabilities"},
		// Lives at the content root, not under docs/.
		{ID: "minimax-content", Title: "MiniMax Space Content", Filename: "minimax_space_content.md", Format: md, Category: "Research",
			Description: "Extracted content and analysis from MiniMax space webpage"},
	}
}

func workflowConfigs() []catalog.Config {
	wf := catalog.FormatWorkflow
	return []catalog.Config{
		{ID: "master-orchestrator", Title: "Master Orchestrator", Filename: "master_orchestrator.json", Dir: workflowsDir, Format: wf, Category: "Core",
			Description: "Central coordination workflow that manages and orchestrates all sub-workflows. Acts as the main entry point for complex AI operations."},
		{ID: "research-engine", Title: "Research Engine", Filename: "research_engine.json", Dir: workflowsDir, Format: wf, Category: "Research",
			Description: "Automated research workflow with web search capabilities, content extraction, and information processing for comprehensive data gathering."},
		{ID: "content-generator", Title: "Content Generator", Filename: "content_generator.json", Dir: workflowsDir, Format: wf, Category: "Generation",
			Description: "AI-powered content creation workflow supporting text, image, and multimedia generation with customizable prompts and formatting."},
		{ID: "code-engine", Title: "Code Engine", Filename: "code_engine.json", Dir: workflowsDir, Format: wf, Category: "Development",
			Description: "Development automation workflow for code generation, testing, deployment, and version control integration."},
		{ID: "memory-manager", Title: "Memory Manager", Filename: "memory_manager.json", Dir: workflowsDir, Format: wf, Category: "Storage",
			Description: "State management and persistence workflow for maintaining context, session data, and long-term memory across workflow executions."},
		{ID: "error-handler", Title: "Error Handler", Filename: "error_handler.json", Dir: workflowsDir, Format: wf, Category: "Utilities",
			Description: "Robust error handling and recovery workflow with logging, notification, and automatic retry mechanisms."},
	}
}

type downloadItem struct {
	catalog.Config
	Kind Kind
	Size string
}

func downloadItems() []downloadItem {
	const (
		complete = "Complete Package"
		docs     = "Documentation"
		flows    = "N8N Workflows"
	)
	return []downloadItem{
		{Config: catalog.Config{ID: BulkDownloadID, Title: "Complete Project Archive", Filename: "N8N_AI_Platform_Archive.zip", Format: catalog.FormatArchive, Category: complete,
			Description: "Complete N8N AI Platform Replication project including all documentation, workflows, and implementation guides"}, Kind: KindArchive, Size: "2.5 MB"},
		{Config: catalog.Config{ID: "main-guide", Title: "N8N AI Platform Replication Guide", Filename: "N8N_AI_Platform_Replication_Guide.md", Format: catalog.FormatMarkdown, Category: docs,
			Description: "Comprehensive main documentation covering the complete system overview, implementation, and usage"}, Kind: KindDocument, Size: "26 KB"},
		{Config: catalog.Config{ID: "workflow-master", Title: "Master Orchestrator Workflow", Filename: "master_orchestrator.json", Dir: workflowsDir, Format: catalog.FormatArchive, Category: flows,
			Description: "Central coordination workflow that manages all sub-workflows and orchestrates complex AI operations"}, Kind: KindWorkflow, Size: "298 B"},
		{Config: catalog.Config{ID: "workflow-research", Title: "Research Engine Workflow", Filename: "research_engine.json", Dir: workflowsDir, Format: catalog.FormatArchive, Category: flows,
			Description: "Automated research workflow with web search, content extraction, and information processing capabilities"}, Kind: KindWorkflow, Size: "1.3 KB"},
		{Config: catalog.Config{ID: "workflow-content", Title: "Content Generator Workflow", Filename: "content_generator.json", Dir: workflowsDir, Format: catalog.FormatArchive, Category: flows,
			Description: "AI-powered content creation workflow supporting text, image, and multimedia generation"}, Kind: KindWorkflow, Size: "2.0 KB"},
		{Config: catalog.Config{ID: "workflow-code", Title: "Code Engine Workflow", Filename: "code_engine.json", Dir: workflowsDir, Format: catalog.FormatArchive, Category: flows,
			Description: "Development automation workflow for code generation, testing, and deployment"}, Kind: KindWorkflow, Size: "1.8 KB"},
		{Config: catalog.Config{ID: "workflow-memory", Title: "Memory Manager Workflow", Filename: "memory_manager.json", Dir: workflowsDir, Format: catalog.FormatArchive, Category: flows,
			Description: "State management workflow for maintaining context and session data across executions"}, Kind: KindWorkflow, Size: "1.5 KB"},
		{Config: catalog.Config{ID: "workflow-error", Title: "Error Handler Workflow", Filename: "error_handler.json", Dir: workflowsDir, Format: catalog.FormatArchive, Category: flows,
			Description: "Robust error handling workflow with logging, notification, and recovery mechanisms"}, Kind: KindWorkflow, Size: "1.2 KB"},
		{Config: catalog.Config{ID: "final-report", Title: "Final Report", Filename: "final_report.md", Dir: docsDir, Format: catalog.FormatMarkdown, Category: docs,
			Description: "Comprehensive project summary with findings, analysis, and conclusions"}, Kind: KindDocument, Size: "28 KB"},
		{Config: catalog.Config{ID: "implementation-roadmap", Title: "Implementation Roadmap", Filename: "implementation_roadmap.md", Dir: docsDir, Format: catalog.FormatMarkdown, Category: docs,
			Description: "Phased implementation plan with priorities, timelines, and detailed setup instructions"}, Kind: KindDocument, Size: "2.3 KB"},
		{Config: catalog.Config{ID: "capability-mapping", Title: "Capability Mapping", Filename: "capability_mapping.md", Dir: docsDir, Format: catalog.FormatMarkdown, Category: docs,
			Description: "Detailed mapping of AI platform capabilities to N8N workflow components"}, Kind: KindDocument, Size: "8.2 KB"},
		{Config: catalog.Config{ID: "workflow-architecture", Title: "Workflow Architecture", Filename: "workflow_architecture.md", Dir: docsDir, Format: catalog.FormatMarkdown, Category: docs,
			Description: "Detailed architecture overview and workflow design patterns for the N8N system"}, Kind: KindDocument, Size: "3.3 KB"},
	}
}

var platforms = []Platform{
	{
		ID: "manus-im", Name: "Manus.im", Category: "Content Creation",
		Description: "AI-powered content generation platform with advanced multimodal capabilities for creating text, images, and interactive content.",
		Strengths: []string{
			"Advanced multimodal AI processing",
			"Intuitive content generation interface",
			"High-quality output across multiple formats",
			"Real-time collaboration features",
			"Extensive template library",
		},
		Limitations: []string{
			"Limited API access for automation",
			"Proprietary content formats",
			"Subscription-based pricing model",
			"Limited customization options",
		},
		N8NMapping: "Content Generator + Research Engine sub-workflows with OpenAI/Anthropic integrations",
		Complexity: Medium, Feasibility: High, URL: "https://manus.im",
	},
	{
		ID: "lovable-dev", Name: "Lovable.dev", Category: "Web Development",
		Description: "AI-powered web development platform that generates full-stack applications from natural language descriptions.",
		Strengths: []string{
			"Full-stack application generation",
			"Modern framework support (React, Vue, etc.)",
			"Integrated deployment pipeline",
			"Version control integration",
			"Responsive design generation",
		},
		Limitations: []string{
			"Limited to specific tech stacks",
			"Complex customization requirements",
			"Learning curve for non-developers",
			"Dependency on external services",
		},
		N8NMapping: "Code Engine + Content Generator with GitHub/GitLab API integrations and deployment workflows",
		Complexity: High, Feasibility: Medium, URL: "https://lovable.dev",
	},
	{
		ID: "chatllm", Name: "ChatLLM", Category: "Conversational AI",
		Description: "Advanced conversational AI platform with document processing, web search, and multi-modal interaction capabilities.",
		Strengths: []string{
			"Natural conversation flows",
			"Document analysis and Q&A",
			"Web search integration",
			"Multi-language support",
			"Context-aware responses",
		},
		Limitations: []string{
			"Token usage limitations",
			"API rate limiting",
			"Context window constraints",
			"Cost per interaction model",
		},
		N8NMapping: "Master Orchestrator + Research Engine + Memory Manager with LLM API integrations",
		Complexity: Medium, Feasibility: High,
	},
	{
		ID: "minimax-m1", Name: "MiniMax M1", Category: "AI Platform",
		Description: "Comprehensive AI platform offering text generation, image creation, voice synthesis, and multimodal processing capabilities.",
		Strengths: []string{
			"Comprehensive AI model suite",
			"High-quality voice synthesis",
			"Advanced image generation",
			"Competitive pricing model",
			"Developer-friendly APIs",
		},
		Limitations: []string{
			"Regional availability constraints",
			"Documentation primarily in Chinese",
			"Limited community support",
			"Integration complexity",
		},
		N8NMapping: "All sub-workflows with MiniMax API integrations across text, image, and voice processing",
		Complexity: Medium, Feasibility: High,
	},
	{
		ID: "general-ai-agent", Name: "General AI Agent", Category: "AI Automation",
		Description: "Flexible AI agent platform capable of performing research, content creation, code generation, and workflow automation.",
		Strengths: []string{
			"Multi-domain capability",
			"Workflow automation features",
			"Extensible architecture",
			"Integration flexibility",
			"Scalable processing",
		},
		Limitations: []string{
			"Generic approach limitations",
			"Configuration complexity",
			"Performance optimization needs",
			"Specialized domain constraints",
		},
		N8NMapping: "Complete N8N workflow suite with Master Orchestrator coordinating all specialized sub-workflows",
		Complexity: High, Feasibility: High,
	},
}

var views = []View{
	{ID: "overview", Title: "System Overview", Description: "High-level system architecture and component relationships"},
	{ID: "workflow", Title: "Workflow Architecture", Description: "Master/sub-workflow pattern and execution flow"},
	{ID: "components", Title: "Component Breakdown", Description: "Individual workflow components and their responsibilities"},
	{ID: "dataflow", Title: "Data Flow", Description: "Data processing and transformation patterns"},
}

var components = []Component{
	{Name: "Master Orchestrator", Type: "Core Controller",
		Responsibilities: []string{"Request parsing and routing", "Sub-workflow coordination", "Result aggregation", "State management", "Error handling orchestration"},
		Connections:      []string{"All sub-workflows"}},
	{Name: "Research Engine", Type: "Information Processing",
		Responsibilities: []string{"Web search and scraping", "Content extraction", "Document processing", "Information validation", "Source management"},
		Connections:      []string{"External APIs", "Web Services"}},
	{Name: "Content Generator", Type: "AI Generation",
		Responsibilities: []string{"Text generation via LLM APIs", "Image generation", "Content formatting", "Template processing", "Quality validation"},
		Connections:      []string{"OpenAI", "Anthropic", "Image APIs"}},
	{Name: "Code Engine", Type: "Development Automation",
		Responsibilities: []string{"Code generation and testing", "Repository management", "Deployment automation", "Version control integration", "Quality assurance"},
		Connections:      []string{"Git APIs", "CI/CD Systems"}},
	{Name: "Memory Manager", Type: "State Management",
		Responsibilities: []string{"Session persistence", "Context management", "Data caching", "State synchronization", "Historical data storage"},
		Connections:      []string{"Database", "Cache Systems"}},
	{Name: "Error Handler", Type: "Reliability System",
		Responsibilities: []string{"Error detection and logging", "Retry mechanisms", "Fallback strategies", "Alert notifications", "Recovery procedures"},
		Connections:      []string{"Logging Systems", "Monitoring"}},
}

var principles = []Principle{
	{Title: "Modularity", Description: "Master/sub-workflow pattern promotes reusability and maintainability"},
	{Title: "Scalability", Description: "Queue-based execution model allows horizontal scaling"},
	{Title: "Separation of Concerns", Description: "Each sub-workflow handles a specific domain responsibility"},
	{Title: "Reliability", Description: "Built-in error handling and recovery mechanisms"},
}

var stages = []Stage{
	{Stage: "Input Processing", Description: "Request parsing and validation",
		Components: []string{"Master Orchestrator"}, DataTypes: []string{"User requests", "Configuration parameters"}},
	{Stage: "Information Gathering", Description: "Research and data collection",
		Components: []string{"Research Engine", "Memory Manager"}, DataTypes: []string{"Web content", "Documents", "Historical data"}},
	{Stage: "Content Generation", Description: "AI-powered content creation",
		Components: []string{"Content Generator", "Code Engine"}, DataTypes: []string{"Generated text", "Code", "Images"}},
	{Stage: "Output Aggregation", Description: "Result compilation and formatting",
		Components: []string{"Master Orchestrator"}, DataTypes: []string{"Final outputs", "Status reports"}},
}

var phases = []Phase{
	{
		ID: "infrastructure", Title: "Core Infrastructure Setup",
		Description: "Set up the foundational N8N environment and infrastructure",
		Steps: []Step{
			{ID: "n8n-deploy", Title: "Deploy N8N in Queue-Based Configuration", Priority: High,
				Description: "Set up N8N with scalable queue-based execution for production workloads",
				Commands: []string{
					"docker run -d --name n8n-main -p 5678:5678 -e N8N_BASIC_AUTH_ACTIVE=true -e N8N_BASIC_AUTH_USER=admin -e N8N_BASIC_AUTH_PASSWORD=password n8nio/n8n",
					"docker run -d --name n8n-worker -e N8N_EXECUTION_MODE=queue n8nio/n8n worker",
				},
				Notes: []string{
					"Use Docker Compose for production deployments",
					"Configure environment variables for your specific setup",
					"Ensure proper network connectivity between containers",
				}},
			{ID: "database-setup", Title: "Configure Production Database", Priority: High,
				Description: "Set up PostgreSQL database for N8N data persistence",
				Commands: []string{
					"docker run -d --name n8n-postgres -e POSTGRES_DB=n8n -e POSTGRES_USER=n8n -e POSTGRES_PASSWORD=password postgres:13",
					"docker run -d --name n8n-redis -p 6379:6379 redis:7-alpine",
				},
				Notes: []string{
					"Use managed database services for production (AWS RDS, Google Cloud SQL)",
					"Configure regular backups and monitoring",
					"Set up Redis for queue management and caching",
				}},
			{ID: "reverse-proxy", Title: "Setup Reverse Proxy", Priority: High,
				Description: "Configure Nginx for secure access and load balancing",
				Commands: []string{
					"sudo apt update && sudo apt install nginx",
					"sudo systemctl enable nginx && sudo systemctl start nginx",
					"sudo certbot --nginx -d your-n8n-domain.com",
				},
				Notes: []string{
					"Configure SSL certificates with Let's Encrypt",
					"Set up proper security headers",
					"Configure rate limiting and DDoS protection",
				}},
			{ID: "monitoring-setup", Title: "Implement Logging and Monitoring", Priority: Medium,
				Description: "Set up centralized logging and monitoring systems",
				Commands: []string{
					`docker run -d --name elasticsearch -p 9200:9200 -e "discovery.type=single-node" elasticsearch:7.17.0`,
					"docker run -d --name kibana -p 5601:5601 --link elasticsearch:elasticsearch kibana:7.17.0",
					"docker run -d --name prometheus -p 9090:9090 prom/prometheus",
				},
				Notes: []string{
					"Use ELK stack for log aggregation and analysis",
					"Set up Prometheus and Grafana for metrics monitoring",
					"Configure alerts for critical system events",
				}},
			{ID: "version-control", Title: "Establish Version Control", Priority: Medium,
				Description: "Set up Git repository for workflow management",
				Commands: []string{
					"git init n8n-workflows",
					"git remote add origin https://your-git-repo.com/n8n-workflows.git",
					`git add . && git commit -m "Initial N8N workflow setup"`,
				},
				Notes: []string{
					"Use Git hooks for automated workflow validation",
					"Implement branching strategy for development/production",
					"Set up automated backups of workflow configurations",
				}},
		},
	},
	{
		ID: "workflows", Title: "Foundational Sub-workflows",
		Description: "Deploy and configure the core workflow components",
		Steps: []Step{
			{ID: "research-workflow", Title: "Implement Research Sub-workflow", Priority: High,
				Description: "Deploy the research engine with web search and content extraction",
				Notes: []string{
					"Import research_engine.json workflow file",
					"Configure Google Search API credentials",
					"Set up web scraping endpoints and rate limiting",
					"Test document reading services for PDF/DOCX support",
				}},
			{ID: "content-workflow", Title: "Deploy Content Generation Sub-workflow", Priority: High,
				Description: "Set up AI-powered content generation with LLM integration",
				Notes: []string{
					"Import content_generator.json workflow file",
					"Configure OpenAI API credentials and rate limits",
					"Set up image generation with DALL-E or Stability AI",
					"Implement content quality validation and filtering",
				}},
			{ID: "master-orchestrator", Title: "Configure Master Orchestrator", Priority: High,
				Description: "Deploy the central coordination workflow",
				Notes: []string{
					"Import master_orchestrator.json workflow file",
					"Configure sub-workflow calling mechanisms",
					"Set up request routing and parsing logic",
					"Implement result aggregation and formatting",
				}},
			{ID: "code-engine", Title: "Setup Code Engine Sub-workflow", Priority: Medium,
				Description: "Deploy development automation and code generation",
				Notes: []string{
					"Import code_engine.json workflow file",
					"Configure GitHub/GitLab API integration",
					"Set up automated testing and deployment pipelines",
					"Implement code quality checks and validation",
				}},
			{ID: "memory-manager", Title: "Deploy Memory Manager", Priority: Medium,
				Description: "Set up state management and persistence",
				Notes: []string{
					"Import memory_manager.json workflow file",
					"Configure database connections for state storage",
					"Set up session management and context persistence",
					"Implement data cleanup and archival policies",
				}},
			{ID: "error-handler", Title: "Implement Error Handler", Priority: High,
				Description: "Deploy comprehensive error handling and recovery",
				Notes: []string{
					"Import error_handler.json workflow file",
					"Configure error logging and notification systems",
					"Set up retry mechanisms and fallback strategies",
					"Implement automated recovery procedures",
				}},
		},
	},
	{
		ID: "advanced", Title: "Advanced Capabilities",
		Description: "Implement advanced features and integrations",
		Steps: []Step{
			{ID: "web-development", Title: "Web Development Sub-workflow", Priority: Medium,
				Description: "Set up automated web development capabilities",
				Notes: []string{
					"Integrate with Figma API for design specifications",
					"Configure code generation for React/Vue/Angular",
					"Set up automated testing and deployment",
					"Implement responsive design validation",
				}},
			{ID: "multimodal", Title: "Multi-modal Processing", Priority: Medium,
				Description: "Implement image, video, and audio processing",
				Notes: []string{
					"Configure Google Vision API for image analysis",
					"Set up video processing with cloud services",
					"Implement audio transcription and analysis",
					"Add document OCR and text extraction",
				}},
			{ID: "api-integrations", Title: "External API Integrations", Priority: Low,
				Description: "Connect with third-party services and APIs",
				Notes: []string{
					"Implement Slack, Discord, and Teams integrations",
					"Set up CRM and marketing automation connections",
					"Configure data analytics and reporting APIs",
					"Add social media platform integrations",
				}},
		},
	},
	{
		ID: "optimization", Title: "Optimization & Scaling",
		Description: "Optimize performance and prepare for scale",
		Steps: []Step{
			{ID: "performance", Title: "Performance Optimization", Priority: High,
				Description: "Optimize workflow execution and resource usage",
				Notes: []string{
					"Implement execution data pruning strategies",
					"Optimize database queries and indexing",
					"Configure caching layers for frequently accessed data",
					"Set up workflow execution monitoring and profiling",
				}},
			{ID: "scaling", Title: "Horizontal Scaling Setup", Priority: Medium,
				Description: "Configure system for horizontal scaling",
				Notes: []string{
					"Set up load balancing across multiple N8N instances",
					"Configure auto-scaling based on queue depth",
					"Implement distributed caching with Redis Cluster",
					"Set up database read replicas for improved performance",
				}},
			{ID: "security", Title: "Security Hardening", Priority: High,
				Description: "Implement comprehensive security measures",
				Notes: []string{
					"Configure API authentication and authorization",
					"Set up network security and firewall rules",
					"Implement secrets management and rotation",
					"Configure audit logging and compliance monitoring",
				}},
		},
	},
}

var features = []Feature{
	{Title: "6 Production-Ready Workflows", Description: "Master Orchestrator, Research Engine, Content Generator, Code Engine, Memory Manager, and Error Handler"},
	{Title: "Comprehensive Documentation", Description: "Complete guides, architecture diagrams, and implementation roadmaps for technical teams"},
	{Title: "Platform Analysis", Description: "Detailed comparison and capability mapping of Manus.im, Lovable.dev, ChatLLM, and MiniMax"},
	{Title: "Technical Implementation", Description: "Ready-to-import JSON workflows with detailed setup instructions and API integrations"},
}

var quickAccess = []Link{
	{Title: "Documentation Hub", Description: "Browse all project documentation with search and navigation", Href: "/documentation"},
	{Title: "Workflow Explorer", Description: "Interactive display of all 6 N8N workflows with JSON preview", Href: "/workflows"},
	{Title: "Architecture Viewer", Description: "System architecture diagrams and explanations", Href: "/architecture"},
	{Title: "Implementation Guide", Description: "Step-by-step deployment and setup instructions", Href: "/implementation"},
	{Title: "Platform Analysis", Description: "Comparison of AI platforms and capabilities", Href: "/analysis"},
	{Title: "Download Center", Description: "Access complete project archive and individual files", Href: "/downloads"},
}
