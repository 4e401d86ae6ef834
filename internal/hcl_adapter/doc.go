// Package hcl_adapter implements config.Loader for HCL pipeline files and
// writes exported parameter groups back to HCL.
//
// A pipeline file looks like:
//
//	format_version = "1.0.0"
//
//	node "node1" {
//	  name = "Gaussian blur"
//
//	  parameter "sigma" {
//	    type    = number
//	    default = 1.5
//	  }
//
//	  collection "advanced" {
//	    parameter "mode" {
//	      type    = string
//	      default = "reflect"
//	    }
//	  }
//	}
//
//	exported_parameters {
//	  group "Group A" {
//	    reference {
//	      path        = "node1/sigma"
//	      custom_name = "Blur radius"
//	    }
//	  }
//	}
//
// Files are read through viant/afs, so paths may be local files, local
// directories (searched recursively for *.hcl) or any URL afs understands.
package hcl_adapter
